package model

import (
	"time"

	"github.com/jinzhu/gorm/dialects/postgres"
)

const (
	ImportBatchStatusProcessing = "processing"
	ImportBatchStatusCompleted  = "completed"
)

// ImportBatch - Audit record of one bulk-import invocation. Created before
// the row loop begins and finalized with counts once the loop ends, so a
// crash mid-import leaves a visible "processing" row behind.
type ImportBatch struct {
	ID            string          `gorm:"primary_key" json:"id"`
	ProjectID     int64           `json:"project_id"`
	BatchCode     string          `json:"batch_code"`
	Source        string          `json:"source"`
	Status        string          `json:"status"`
	ColumnMapping *postgres.Jsonb `json:"column_mapping"`
	TotalRows     int             `json:"total_rows"`
	ImportedRows  int             `json:"imported_rows"`
	UpdatedRows   int             `json:"updated_rows"`
	SkippedRows   int             `json:"skipped_rows"`
	ErrorRows     int             `json:"error_rows"`
	ErrorDetails  *postgres.Jsonb `json:"error_details"`
	CreatedBy     string          `json:"created_by"`
	CompletedAt   *time.Time      `json:"completed_at"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (ImportBatch) TableName() string {
	return "import_batches"
}
