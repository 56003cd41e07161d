package models

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sequence names used with NextSequence
const SequenceSchedule = "schedule"

// Counter backs the per-name sequential codes (schedule codes etc).
type Counter struct {
	Name string `gorm:"primary_key"`
	Seq  int    `gorm:"not null;default:0"`
}

// NextSequence atomically increments and returns the sequence for the given name.
// The upsert locks the counter row for the rest of the transaction, so the
// read-back cannot observe a concurrent increment.
func NextSequence(db *gorm.DB, name string) (int, error) {
	var seq int
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"seq": gorm.Expr("counters.seq + 1")}),
		}).Create(&Counter{Name: name, Seq: 1}).Error; err != nil {
			return err
		}

		var counter Counter
		if err := tx.Where("name = ?", name).First(&counter).Error; err != nil {
			return err
		}
		seq = counter.Seq
		return nil
	})
	return seq, err
}
