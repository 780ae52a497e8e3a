package admin

import (
	"sort"

	"github.com/tallerbv/taller-backend/internal/types"
)

// Resource describes one entity exposed through the back-office CRUD API.
// NewModel returns a pointer to a zero record; NewSlice returns a pointer to
// an empty slice of records, ready for a list query.
type Resource struct {
	Name     string
	NewModel func() any
	NewSlice func() any
}

// Registry maps resource slugs to their models. Every entity the original
// back office manages is registered here.
type Registry struct {
	resources map[string]Resource
}

func NewRegistry() *Registry {
	return &Registry{resources: map[string]Resource{}}
}

func (r *Registry) Register(res Resource) {
	r.resources[res.Name] = res
}

func (r *Registry) Get(name string) (Resource, bool) {
	res, ok := r.resources[name]
	return res, ok
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.resources))
	for name := range r.resources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func register[T any](r *Registry, name string) {
	r.Register(Resource{
		Name:     name,
		NewModel: func() any { return new(T) },
		NewSlice: func() any { return new([]*T) },
	})
}

// DefaultRegistry exposes the full back-office schema.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	register[types.Contact](r, "contacts")
	register[types.InvoiceType](r, "invoice-types")
	register[types.UnitMeasurement](r, "unit-measurements")
	register[types.Enterprise](r, "enterprises")
	register[types.Mechanic](r, "mechanics")
	register[types.Part](r, "parts")
	register[types.PaymentMethod](r, "payment-methods")
	register[types.ServiceGuarantee](r, "service-guarantees")
	register[types.Provenance](r, "provenances")
	register[types.Vehicle](r, "vehicles")
	register[types.WorkOrder](r, "work-orders")
	register[types.PhysicalState](r, "physical-states")
	register[types.Invoice](r, "invoices")
	register[types.Activity](r, "activities")
	return r
}
