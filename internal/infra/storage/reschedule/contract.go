package reschedule

import "github.com/m04kA/SMC-SchedulingAssistant/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
