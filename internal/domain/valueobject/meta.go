package valueobject

import "time"

const (
	MetaKeyTypeName = "typeName"
	MetaKeyCreateAt = "createAt"
	MetaKeyUpdateAt = "updateAt"
)

// Meta is the free-form JSON object the host editor stores alongside a shape.
type Meta map[string]any

func NowMillis(now time.Time) int64 {
	return now.UnixMilli()
}

func (m Meta) Clone() Meta {
	if m == nil {
		return nil
	}
	out := make(Meta, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (m Meta) TypeName() string {
	s, _ := m[MetaKeyTypeName].(string)
	return s
}

// Int64 reads a numeric key regardless of how the decoder typed it.
func (m Meta) Int64(key string) (int64, bool) {
	switch v := m[key].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case uint64:
		return int64(v), true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}

func (m Meta) CreateAt() (time.Time, bool) {
	ms, ok := m.Int64(MetaKeyCreateAt)
	if !ok {
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}

func (m Meta) Touch(now time.Time) bool {
	if _, ok := m[MetaKeyUpdateAt]; !ok {
		return false
	}
	m[MetaKeyUpdateAt] = NowMillis(now)
	return true
}
