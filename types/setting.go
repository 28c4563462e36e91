package types

// SettingGroup is a group in the settings index.
type SettingGroup struct {
	ID          string   `json:"id,omitempty"`
	Label       string   `json:"label,omitempty"`
	Description string   `json:"description,omitempty"`
	ParentID    string   `json:"parent_id,omitempty"`
	SubGroups   []string `json:"sub_groups,omitempty"`
}

// SettingOption is a single option nested under settings/<group>.
// Value and Default are schema-dependent (string, number, array, map).
type SettingOption struct {
	ID          string            `json:"id,omitempty"`
	Label       string            `json:"label,omitempty"`
	Description string            `json:"description,omitempty"`
	Value       any               `json:"value,omitempty"`
	Default     any               `json:"default,omitempty"`
	Tip         string            `json:"tip,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	Type        string            `json:"type,omitempty"`
	Options     map[string]string `json:"options,omitempty"`
	GroupID     string            `json:"group_id,omitempty"`
}

// SettingElement is an embedded per-field setting, as found inside payment
// gateway and shipping method configurations.
type SettingElement struct {
	ID          string `json:"id,omitempty"`
	Label       string `json:"label,omitempty"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
	Value       any    `json:"value,omitempty"`
	Default     any    `json:"default,omitempty"`
	Tip         string `json:"tip,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
}

// PaymentGateway mirrors the payment_gateways endpoint schema. Gateways are
// addressed by string id ("bacs", "cod", ...) and support list/get/update only.
type PaymentGateway struct {
	ID                string                    `json:"id,omitempty"`
	Title             string                    `json:"title,omitempty"`
	Description       string                    `json:"description,omitempty"`
	Order             any                       `json:"order,omitempty"`
	Enabled           bool                      `json:"enabled,omitempty"`
	MethodTitle       string                    `json:"method_title,omitempty"`
	MethodDescription string                    `json:"method_description,omitempty"`
	Settings          map[string]SettingElement `json:"settings,omitempty"`
}
