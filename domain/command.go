package domain

// RegisterCommand carries a registration request into the registry service.
// The name is trimmed before validation.
type RegisterCommand struct {
	Name string `validate:"required,min=3,max=30"`
}

// PostMessageCommand carries a user-authored message into the message
// service. Status notices are registry-generated and never arrive here,
// hence the two-value oneof.
type PostMessageCommand struct {
	From string `validate:"required"`
	To   string `validate:"required"`
	Text string `validate:"required,min=1,max=400"`
	Kind Kind   `validate:"required,oneof=message private_message"`
}
