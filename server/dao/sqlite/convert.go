package sqlite

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/dekarrin/rezi"
	"github.com/dekarrin/srparse/lr"
	"github.com/google/uuid"
)

func convertToDB_UUID(u uuid.UUID) string {
	return u.String()
}

func convertFromDB_UUID(s string, target *uuid.UUID) error {
	u, err := uuid.Parse(s)
	if err != nil {
		return err
	}
	*target = u
	return nil
}

func convertToDB_Time(t time.Time) int64 {
	return t.Unix()
}

func convertFromDB_Time(i int64, target *time.Time) {
	*target = time.Unix(i, 0)
}

// tables are stored as base64-encoded REZI.
func convertToDB_Table(t lr.Table) string {
	return base64.StdEncoding.EncodeToString(rezi.EncBinary(t))
}

func convertFromDB_Table(s string, target *lr.Table) error {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return fmt.Errorf("decode base64: %w", err)
	}

	t, err := lr.DecodeTable(data, lr.FormatREZI)
	if err != nil {
		return err
	}
	*target = t
	return nil
}
