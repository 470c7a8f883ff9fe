package queue

import (
	"github.com/maheshrc27/fluxora/internal/service"
)

type Queue struct {
	ex service.ExportService
}

func NewQueue(ex service.ExportService) *Queue {
	return &Queue{ex: ex}
}

const TaskTypeExportCalendar = "export:calendar"
