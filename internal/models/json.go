package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// The nested invoice/transaction structures are persisted as opaque
// JSON document columns on the relational backend. Implementing
// driver.Valuer and sql.Scanner here keeps both gorm drivers happy
// without a separate datatypes dependency.

func jsonValue(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func jsonScan(dst any, src any) error {
	if src == nil {
		return nil
	}
	switch b := src.(type) {
	case []byte:
		return json.Unmarshal(b, dst)
	case string:
		return json.Unmarshal([]byte(b), dst)
	default:
		return fmt.Errorf("json column: unsupported source type %T", src)
	}
}

func (c CariBilgileri) Value() (driver.Value, error) { return jsonValue(c) }
func (c *CariBilgileri) Scan(src any) error          { return jsonScan(c, src) }

func (l LineItems) Value() (driver.Value, error) { return jsonValue(l) }
func (l *LineItems) Scan(src any) error          { return jsonScan(l, src) }

func (t Toplamlar) Value() (driver.Value, error) { return jsonValue(t) }
func (t *Toplamlar) Scan(src any) error          { return jsonScan(t, src) }
