package domain

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is what the generic store needs from every resource kind.
type Document interface {
	GetID() primitive.ObjectID
	SetID(id primitive.ObjectID)
	// Touch sets CreatedAt on first call and UpdatedAt on every call.
	Touch(now time.Time)
	OwnerID() primitive.ObjectID
	SetOwnerID(id primitive.ObjectID)
	// Validate checks the schema rules before every write and fills in
	// defaults such as empty arrays.
	Validate() error
}

// DocumentPtr lets generic code work with a value type T while calling the
// pointer methods of Document.
type DocumentPtr[T any] interface {
	*T
	Document
}

// Base carries the store-assigned identifier and timestamps.
type Base struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (b *Base) GetID() primitive.ObjectID {
	return b.ID
}

func (b *Base) SetID(id primitive.ObjectID) {
	b.ID = id
}

func (b *Base) Touch(now time.Time) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

// ValidationError lists every rule a document broke.
type ValidationError struct {
	Model  string
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s validation failed: %s", e.Model, strings.Join(e.Fields, ", "))
}

var (
	validate  = newValidator()
	indexInNs = regexp.MustCompile(`\[(\d+)\]`)
)

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateDocument runs the validate tags of doc and reports failures as
// "<path> is required", with array indexes written as meals.0.calories.
func validateDocument(model string, doc any) error {
	err := validate.Struct(doc)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := &ValidationError{Model: model}
	for _, fe := range fieldErrs {
		verr.Fields = append(verr.Fields, fieldPath(fe.Namespace())+" "+describe(fe))
	}
	return verr
}

// fieldPath drops the struct name and turns meals[0].calories into meals.0.calories.
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		namespace = namespace[i+1:]
	}
	return indexInNs.ReplaceAllString(namespace, ".$1")
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	default:
		return fmt.Sprintf("fails %q", fe.Tag())
	}
}
