package normalize

const (
	Names     = "names"
	Dates     = "dates"
	Pets      = "pets"
	Companies = "companies"
	Extra     = "extra"
)

// Fields lists the known input fields in declaration order.
var Fields = []string{Names, Dates, Pets, Companies, Extra}

type entry struct {
	field     string
	delimited string
	values    []string
	isList    bool
}

// RawInputSet maps a field name to either a delimited string or a list of
// values. Entries are visited in the order they were first set.
type RawInputSet struct {
	entries []entry
}

func (r *RawInputSet) SetDelimited(field, value string) {
	r.set(entry{field: field, delimited: value})
}

func (r *RawInputSet) SetValues(field string, values ...string) {
	r.set(entry{field: field, values: values, isList: true})
}

func (r *RawInputSet) Len() int {
	return len(r.entries)
}

func (r *RawInputSet) set(e entry) {
	for i := range r.entries {
		if r.entries[i].field == e.field {
			r.entries[i] = e
			return
		}
	}

	r.entries = append(r.entries, e)
}
