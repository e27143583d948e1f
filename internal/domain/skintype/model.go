package skintype

// SkinType is the label produced by the classifier.
type SkinType string

const (
	Dry    SkinType = "dry"
	Normal SkinType = "normal"
	Oily   SkinType = "oily"
)

// Default is returned when no model artifact is available or classification
// fails; the request still succeeds.
const Default = Oily

// All lists the legal labels in training order.
var All = []SkinType{Dry, Normal, Oily}

// Valid reports whether t is one of the known labels.
func (t SkinType) Valid() bool {
	switch t {
	case Dry, Normal, Oily:
		return true
	}
	return false
}

func (t SkinType) String() string {
	return string(t)
}
