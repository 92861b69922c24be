package Models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SnapshotVersion tags exported snapshot documents.
const SnapshotVersion = "1.0"

// Snapshot bundles every collection plus the settings row into one JSON
// document for backup/restore.
type Snapshot struct {
	Version      string           `json:"version"`
	Timestamp    string           `json:"timestamp"`
	Users        []User           `json:"users"`
	Entries      []Entry          `json:"entries"`
	Wholesalers  []Wholesaler     `json:"wholesalers"`
	Transactions []AccTransaction `json:"transactions"`
	Settings     *Settings        `json:"settings,omitempty"`
}

// SnapshotImport is an audit row recorded for every successful import.
type SnapshotImport struct {
	gorm.Model
	Version string         `json:"version"`
	Counts  datatypes.JSON `json:"counts"`
}
