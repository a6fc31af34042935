package flight

import "github.com/m04kA/SMC-TourBackoffice/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
