package form

// Observer is notified of every validation the controller runs.
// reason is "" when the field passed.
type Observer interface {
	FieldChecked(f Field, reason string)
	FormChecked(valid bool)
}

type nopObserver struct{}

func (nopObserver) FieldChecked(Field, string) {}
func (nopObserver) FormChecked(bool)           {}
