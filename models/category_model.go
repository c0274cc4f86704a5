package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

type Category struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Type      string     `gorm:"type:text" json:"type"`
	Questions []Question `gorm:"foreignKey:Category;references:ID" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}

type FormattedCategory struct {
	ID   uint   `json:"id"`
	Type string `json:"type"`
}

func (c Category) Format() FormattedCategory {
	return FormattedCategory{ID: c.ID, Type: c.Type}
}

// CategoryTypes encodes as a JSON object of id to type, keeping slice order
// so ids come out ascending when the categories were loaded ordered by id.
type CategoryTypes []Category

func (ct CategoryTypes) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBufferString("{")
	for i, c := range ct {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(strconv.FormatUint(uint64(c.ID), 10)))
		buf.WriteByte(':')
		typ, err := json.Marshal(c.Type)
		if err != nil {
			return nil, err
		}
		buf.Write(typ)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
