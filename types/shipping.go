package types

// ShippingZone mirrors the shipping/zones endpoint schema.
type ShippingZone struct {
	ID    int64  `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Order int    `json:"order,omitempty"`
}

// ShippingZoneLocation scopes a zone to a country, state, continent or
// postcode, nested under shipping/zones/<id>/locations.
type ShippingZoneLocation struct {
	Code string `json:"code,omitempty"`
	Type string `json:"type,omitempty"`
}

// ShippingZoneMethod is a method instance nested under
// shipping/zones/<id>/methods. InstanceID is the id the API addresses.
type ShippingZoneMethod struct {
	InstanceID        int64                     `json:"instance_id,omitempty"`
	Title             string                    `json:"title,omitempty"`
	Order             int                       `json:"order,omitempty"`
	Enabled           bool                      `json:"enabled,omitempty"`
	MethodID          string                    `json:"method_id,omitempty"`
	MethodTitle       string                    `json:"method_title,omitempty"`
	MethodDescription string                    `json:"method_description,omitempty"`
	Settings          map[string]SettingElement `json:"settings,omitempty"`
}

// ShippingMethod is a registered shipping method type (flat_rate, ...).
type ShippingMethod struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}
