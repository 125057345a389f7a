package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Country represents a country record served by the query API
type Country struct {
	ID         int64  `gorm:"column:countryid;primaryKey;autoIncrement" json:"countryid"`
	Name       string `gorm:"type:varchar(100);not null;unique" json:"name"`
	Population int64  `gorm:"not null;check:population >= 0" json:"population"`
}

// TableName specifies the table name for Country model
func (*Country) TableName() string {
	return "countries"
}

// FirstLetter returns the first rune of the name folded to lower case.
// ok is false for an empty name.
func (c *Country) FirstLetter() (r rune, ok bool) {
	if c.Name == "" {
		return 0, false
	}
	r, _ = utf8.DecodeRuneInString(c.Name)
	return unicode.ToLower(r), true
}

// SortKey is the case-insensitive key countries are ordered by
func (c *Country) SortKey() string {
	return strings.ToLower(c.Name)
}

// Validate performs validation on the country model
func (c *Country) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrInvalidCountryName
	}
	if c.Population < 0 {
		return ErrInvalidPopulation
	}
	return nil
}
