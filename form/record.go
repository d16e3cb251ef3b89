package form

// Values is the current content of every field. The zero value is the
// initial, all-empty form.
type Values struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (v Values) Get(f Field) string {
	if p := v.ref(f); p != nil {
		return *p
	}
	return ""
}

func (v *Values) Set(f Field, s string) {
	if p := v.ref(f); p != nil {
		*p = s
	}
}

func (v *Values) ref(f Field) *string {
	switch f {
	case Name:
		return &v.Name
	case Email:
		return &v.Email
	case Phone:
		return &v.Phone
	case Subject:
		return &v.Subject
	case Message:
		return &v.Message
	}
	return nil
}

// Errors holds the last known validation message per field. An empty string
// means no error was found on the last check, not that the field is valid.
type Errors struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e Errors) Get(f Field) string {
	if p := e.ref(f); p != nil {
		return *p
	}
	return ""
}

func (e Errors) Has(f Field) bool { return e.Get(f) != "" }

// Set stores msg for f; an empty msg clears it.
func (e *Errors) Set(f Field, msg string) {
	if p := e.ref(f); p != nil {
		*p = msg
	}
}

func (e *Errors) Clear(f Field) { e.Set(f, "") }

// Empty reports whether no field carries an error.
func (e Errors) Empty() bool {
	return e == Errors{}
}

// Map returns only the fields that carry an error.
func (e Errors) Map() map[string]string {
	out := make(map[string]string)
	for _, f := range fields {
		if msg := e.Get(f); msg != "" {
			out[string(f)] = msg
		}
	}
	return out
}

func (e *Errors) ref(f Field) *string {
	switch f {
	case Name:
		return &e.Name
	case Email:
		return &e.Email
	case Phone:
		return &e.Phone
	case Subject:
		return &e.Subject
	case Message:
		return &e.Message
	}
	return nil
}

// Touched records which fields the user has left at least once.
type Touched struct {
	Name    bool `json:"name"`
	Email   bool `json:"email"`
	Phone   bool `json:"phone"`
	Subject bool `json:"subject"`
	Message bool `json:"message"`
}

func (t Touched) Get(f Field) bool {
	if p := t.ref(f); p != nil {
		return *p
	}
	return false
}

// Mark flags f as touched. There is no way back short of a reset.
func (t *Touched) Mark(f Field) {
	if p := t.ref(f); p != nil {
		*p = true
	}
}

func (t Touched) Map() map[string]bool {
	out := make(map[string]bool, len(fields))
	for _, f := range fields {
		out[string(f)] = t.Get(f)
	}
	return out
}

func (t *Touched) ref(f Field) *bool {
	switch f {
	case Name:
		return &t.Name
	case Email:
		return &t.Email
	case Phone:
		return &t.Phone
	case Subject:
		return &t.Subject
	case Message:
		return &t.Message
	}
	return nil
}
