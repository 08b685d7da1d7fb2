package models

// FieldInfo describes one field of an entity for the introspection endpoint.
type FieldInfo struct {
	Type     string      `json:"type"`
	Required bool        `json:"required,omitempty"`
	Enum     []string    `json:"enum,omitempty"`
	Default  interface{} `json:"default,omitempty"`
}

// SchemaInfo describes one collection.
type SchemaInfo struct {
	Name   string               `json:"name"`
	Fields map[string]FieldInfo `json:"fields"`
}

// schemaRegistry is populated at build time; nothing is derived via
// reflection at runtime.
var schemaRegistry = []SchemaInfo{
	{
		Name: "user",
		Fields: map[string]FieldInfo{
			"full_name":     {Type: "string", Required: true},
			"email":         {Type: "string", Required: true},
			"mobile":        {Type: "string", Required: true},
			"password_hash": {Type: "string"},
			"role":          {Type: "string", Enum: []string{RoleAdmin, RoleOwner, RoleBuyer}, Default: RoleBuyer},
			"status":        {Type: "string", Enum: []string{UserStatusActive, UserStatusSuspended}, Default: UserStatusActive},
		},
	},
	{
		Name: "property",
		Fields: map[string]FieldInfo{
			"owner_id":      {Type: "string", Required: true},
			"title":         {Type: "string", Required: true},
			"description":   {Type: "string"},
			"property_type": {Type: "string", Required: true, Enum: []string{PropertyTypeApartment, PropertyTypeHouse, PropertyTypePlot, PropertyTypeCommercial, PropertyTypeIndustrial}},
			"price":         {Type: "number", Required: true},
			"currency":      {Type: "string", Default: "INR"},
			"area_sqft":     {Type: "number"},
			"bedrooms":      {Type: "integer"},
			"bathrooms":     {Type: "integer"},
			"parking":       {Type: "boolean"},
			"furnished":     {Type: "boolean"},
			"address_line":  {Type: "string"},
			"city":          {Type: "string"},
			"state":         {Type: "string"},
			"pincode":       {Type: "string"},
			"latitude":      {Type: "number"},
			"longitude":     {Type: "number"},
			"verified":      {Type: "boolean", Default: false},
			"status":        {Type: "string", Enum: []string{PropertyStatusActive, PropertyStatusInactive}, Default: PropertyStatusActive},
			"images":        {Type: "array"},
		},
	},
	{
		Name: "message",
		Fields: map[string]FieldInfo{
			"sender_id":   {Type: "string", Required: true},
			"receiver_id": {Type: "string", Required: true},
			"property_id": {Type: "string"},
			"subject":     {Type: "string", Required: true},
			"body":        {Type: "string", Required: true},
			"is_read":     {Type: "boolean", Default: false},
		},
	},
	{
		Name: "payment",
		Fields: map[string]FieldInfo{
			"buyer_id":            {Type: "string", Required: true},
			"property_id":         {Type: "string", Required: true},
			"amount":              {Type: "number", Required: true},
			"currency":            {Type: "string", Default: "INR"},
			"purpose":             {Type: "string", Enum: []string{PaymentPurposeBooking, PaymentPurposeDeposit, PaymentPurposeOther}, Default: PaymentPurposeBooking},
			"provider":            {Type: "string", Enum: []string{PaymentProviderRazorpay, PaymentProviderStripe, PaymentProviderManual}, Default: PaymentProviderManual},
			"provider_payment_id": {Type: "string"},
			"status":              {Type: "string", Enum: []string{PaymentStatusInitiated, PaymentStatusSuccess, PaymentStatusFailed, PaymentStatusRefunded}, Default: PaymentStatusInitiated},
		},
	},
}

// SchemaDefinitions returns the static entity descriptors.
func SchemaDefinitions() []SchemaInfo {
	return schemaRegistry
}
