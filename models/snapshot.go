package models

import (
	"database/sql/driver"
	"encoding/json"
)

// JSON column value types. Scan never fails on malformed or NULL column data:
// the value degrades to its empty form so one bad row cannot break a listing.

// ImageList is the product gallery stored in the images JSON column.
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	return json.Marshal(l)
}

func (l *ImageList) Scan(value interface{}) error {
	*l = ImageList{}
	raw, ok := jsonBytes(value)
	if !ok {
		return nil
	}
	var images []string
	if err := json.Unmarshal(raw, &images); err != nil || images == nil {
		return nil
	}
	*l = images
	return nil
}

// ItemSnapshot is one purchased line item frozen at checkout time. Fields are
// optional so older rows and sparse client payloads keep round-tripping.
type ItemSnapshot struct {
	ProductID uint    `json:"id,omitempty"`
	Name      string  `json:"name,omitempty"`
	Price     float64 `json:"price,omitempty"`
	Image     string  `json:"image,omitempty"`
	Quantity  int     `json:"quantity"`
}

// ItemList is the items JSON column of an order.
type ItemList []ItemSnapshot

func (l ItemList) Value() (driver.Value, error) {
	if l == nil {
		l = ItemList{}
	}
	return json.Marshal(l)
}

func (l *ItemList) Scan(value interface{}) error {
	*l = ItemList{}
	raw, ok := jsonBytes(value)
	if !ok {
		return nil
	}
	var items []ItemSnapshot
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return nil
	}
	*l = items
	return nil
}

// AddressSnapshot is the shipping address frozen into an order, independent of
// any Address row. Guest orders have only this.
type AddressSnapshot struct {
	Name     string `json:"name"`
	Phone1   string `json:"phone1"`
	Phone2   string `json:"phone2,omitempty"`
	House    string `json:"house"`
	Street   string `json:"street"`
	Area     string `json:"area"`
	City     string `json:"city"`
	Province string `json:"province"`
	Landmark string `json:"landmark,omitempty"`
}

func (a AddressSnapshot) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *AddressSnapshot) Scan(value interface{}) error {
	*a = AddressSnapshot{}
	raw, ok := jsonBytes(value)
	if !ok {
		return nil
	}
	var snap AddressSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil
	}
	*a = snap
	return nil
}

func jsonBytes(value interface{}) ([]byte, bool) {
	switch v := value.(type) {
	case []byte:
		return v, len(v) > 0
	case string:
		return []byte(v), len(v) > 0
	default:
		return nil, false
	}
}
