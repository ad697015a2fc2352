package employee

// UnknownName is shown for records whose employee no longer exists.
const UnknownName = "Unknown"

// Names resolves employee IDs to display names.
type Names map[string]string

func NewNames(employees []Employee) Names {
	names := make(Names, len(employees))
	for _, e := range employees {
		names[e.ID] = e.Name
	}
	return names
}

// Of returns the name for id, or UnknownName for a dangling reference.
func (n Names) Of(id string) string {
	if name, ok := n[id]; ok {
		return name
	}
	return UnknownName
}
