package types

import "time"

// AffectedSupplier 去重后图片引用被改写的供货商
type AffectedSupplier struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type AffectedGroupBuy struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	GroupBuyStartDate time.Time `json:"group_buy_start_date"`
}

type SkippedFile struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

// MigrationReport 图片去重任务的执行结果
type MigrationReport struct {
	ScannedCount     int                 `json:"scanned_count"`
	UniqueCount      int                 `json:"unique_count"`
	DuplicateCount   int                 `json:"duplicate_count"`
	RemovedCount     int                 `json:"removed_count"`
	NewAssetCount    int                 `json:"new_asset_count"`
	UpdatedSuppliers []*AffectedSupplier `json:"updated_suppliers"`
	UpdatedGroupBuys []*AffectedGroupBuy `json:"updated_group_buys"`
	SkippedFiles     []*SkippedFile      `json:"skipped_files"`
}
