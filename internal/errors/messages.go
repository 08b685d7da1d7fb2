package errors

// User-facing error messages
const (
	MsgInvalidID        = "Invalid ID format"
	MsgDuplicateField   = "Email or mobile already registered"
	MsgInvalidLogin     = "Invalid credentials"
	MsgRecordNotFound   = "Record not found"
	MsgOwnerNotFound    = "Owner not found"
	MsgPropertyNotFound = "Property not found"
	MsgBuyerNotFound    = "Buyer not found"
	MsgPaymentNotFound  = "Payment not found"
	MsgUserNotFound     = "User not found"
	MsgNoFieldsToUpdate = "No fields to update"
	MsgInternalError    = "Something went wrong on our end. Please try again later."
)
