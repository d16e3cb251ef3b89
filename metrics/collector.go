package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vortex-fintech/go-contactform/form"
)

const resultOK = "ok"

// Collector counts form validations. It implements form.Observer and
// prometheus.Collector, so one value is handed to both.
type Collector struct {
	fieldChecks *prometheus.CounterVec
	formChecks  *prometheus.CounterVec
}

var (
	_ form.Observer        = (*Collector)(nil)
	_ prometheus.Collector = (*Collector)(nil)
)

func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = "contactform"
	}
	return &Collector{
		fieldChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "field_checks_total",
			Help:      "Field validations by field and result (ok or failure reason).",
		}, []string{"field", "result"}),
		formChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "form_checks_total",
			Help:      "Whole-form validations by result.",
		}, []string{"result"}),
	}
}

// Register adds the collector to reg. Registering the same collector twice is not an error.
func (c *Collector) Register(reg prometheus.Registerer) error {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return nil
		}
		return err
	}
	return nil
}

func (c *Collector) FieldChecked(f form.Field, reason string) {
	if reason == "" {
		reason = resultOK
	}
	c.fieldChecks.WithLabelValues(string(f), reason).Inc()
}

func (c *Collector) FormChecked(valid bool) {
	result := "invalid"
	if valid {
		result = "valid"
	}
	c.formChecks.WithLabelValues(result).Inc()
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.fieldChecks.Describe(ch)
	c.formChecks.Describe(ch)
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.fieldChecks.Collect(ch)
	c.formChecks.Collect(ch)
}
