package models

import (
	"database/sql/driver"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// GoalSlots is the fixed number of goal slots per entry.
const GoalSlots = 3

// GoalList is the goals column: a JSON array of goal texts.
// It can be unmarshaled from either a JSON array or a single JSON string.
type GoalList []string

// Normalized returns the list padded or truncated to exactly GoalSlots entries.
func (g GoalList) Normalized() GoalList {
	out := make(GoalList, GoalSlots)
	copy(out, g)
	return out
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (g *GoalList) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*g = nil
		return nil
	}

	// If it starts with '[', treat it as a normal array
	if data[0] == '[' {
		var slice []string
		if err := json.Unmarshal(data, &slice); err != nil {
			return err
		}
		*g = GoalList(slice)
		return nil
	}

	// Otherwise, try to unmarshal as a single goal and wrap it in a list
	var item string
	if err := json.Unmarshal(data, &item); err != nil {
		return err
	}
	*g = GoalList{item}
	return nil
}

// Value implements the driver.Valuer interface, storing the normalized list as JSON.
func (g GoalList) Value() (driver.Value, error) {
	b, err := json.Marshal(g.Normalized())
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b).Value()
}

// Scan implements the sql.Scanner interface.
func (g *GoalList) Scan(value interface{}) error {
	var j datatypes.JSON
	if err := j.Scan(value); err != nil {
		return err
	}
	if len(j) == 0 {
		*g = nil
		return nil
	}
	var slots []string
	if err := json.Unmarshal(j, &slots); err != nil {
		return err
	}
	*g = GoalList(slots)
	return nil
}

// GormDBDataType ensures the correct data type is used for each database driver.
// This resolves the issue where MSSQL does not support the 'json' data type.
func (GoalList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "JSON"
	case "postgres":
		return "JSONB"
	case "sqlserver", "mssql":
		return "NVARCHAR(MAX)"
	case "sqlite":
		return "JSON"
	}
	return "TEXT"
}
