package tdapi

import (
	"github.com/google/uuid"
)

// Object is implemented by every constructor and function of the schema.
type Object interface {
	// Constructor returns the @type tag of the object.
	Constructor() string
	// Class returns the schema type on the right-hand side of the declaration:
	// the class of a constructor or the result type of a function.
	Class() string
	GetExtra() string
	GetClientId() int32

	cloneObject() Object
}

// Function is implemented by the requests of the schema.
type Function interface {
	Object
	isFunction()
}

// meta holds the correlation fields TDJSON attaches to every object.
type meta struct {
	// Request identifier, echoed back by TDLib in the response
	Extra string `json:"@extra,omitempty"`
	// Identifier of the TDLib client the object belongs to
	ClientId int32 `json:"@client_id,omitempty"`
}

func (m *meta) GetExtra() string {
	return m.Extra
}

func (m *meta) GetClientId() int32 {
	return m.ClientId
}

func newExtra() string {
	return uuid.NewString()
}
