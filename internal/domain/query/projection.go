package query

import "encoding/json"

// 投影相关的保留字段
const (
	// IDField 主键总是保留
	IDField = "id"
	// VersionField 记录版本号，默认投影中去掉
	VersionField = "version"
)

// Projection 字段投影
// Fields非空时只保留id和列出的字段；否则去掉version和Exclude中的字段
type Projection struct {
	Fields  []string
	Exclude []string
}

// IsDefault 是否为默认投影
func (p Projection) IsDefault() bool {
	return len(p.Fields) == 0 && len(p.Exclude) == 0
}

// Apply 对单条记录应用投影，返回新的map，不修改入参
func (p Projection) Apply(record map[string]any) map[string]any {
	if record == nil {
		return nil
	}

	if len(p.Fields) == 0 {
		out := make(map[string]any, len(record))
		for k, v := range record {
			if k == VersionField || p.excluded(k) {
				continue
			}
			out[k] = v
		}
		return out
	}

	out := make(map[string]any, len(p.Fields)+1)
	if v, ok := record[IDField]; ok {
		out[IDField] = v
	}
	for _, f := range p.Fields {
		if v, ok := record[f]; ok {
			out[f] = v
		}
	}
	return out
}

func (p Projection) excluded(field string) bool {
	if field == IDField {
		return false
	}
	for _, f := range p.Exclude {
		if f == field {
			return true
		}
	}
	return false
}

// ApplyAll 对结果集逐条应用投影
func (p Projection) ApplyAll(records []map[string]any) []map[string]any {
	out := make([]map[string]any, 0, len(records))
	for _, r := range records {
		out = append(out, p.Apply(r))
	}
	return out
}

// Records 把结果集转换为以JSON字段名为key的记录，供投影使用
func Records(items interface{}) ([]map[string]any, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}

	records := make([]map[string]any, 0)
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}
