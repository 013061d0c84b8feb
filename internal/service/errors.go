package service

import "fmt"

// ValidationError reports a single extracted filter field that failed schema
// validation. Surfaced to the user as "please clarify"; never coerced into a
// default value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// ExtractionError reports that the completion service produced no usable
// structured payload. Surfaced to the user as "please rephrase"; never retried
// automatically by the extractor.
type ExtractionError struct {
	Reason string
}

func (e *ExtractionError) Error() string {
	return "extraction failed: " + e.Reason
}

// AuthorizationFault reports that the caller lacks the role or ownership the
// operation requires. Fatal to the request, not retryable.
type AuthorizationFault struct {
	Reason string
}

func (e *AuthorizationFault) Error() string {
	return "not authorized: " + e.Reason
}

// User-facing copy for the retryable failure classes. Shared by the chat loop
// and the HTTP error mapping so the clarify/rephrase voice lives in one place.
// Store faults never leak their internal error text through these.
const (
	ReplyClarify    = "No pude entender algunos datos de tu solicitud. ¿Puedes aclararla e intentar de nuevo?"
	ReplyRephrase   = "No pude extraer criterios de búsqueda de tu mensaje. ¿Puedes reformularlo?"
	ReplyStoreError = "Lo siento, ocurrió un error al procesar tu solicitud. Por favor intenta de nuevo."
)
