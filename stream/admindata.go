package stream

import (
	"bytes"

	"github.com/richardlehane/msoleps"

	"github.com/orcadtools/schemparse/model"
)

// ReadAdminData decodes AdminData.bin, an OLE property-set stream
// (SPEC_FULL.md §3, "AdminData via msoleps"). The stream is optional
// at the container level (spec.md §3, container tree); when present
// but not a recognisable property set, Fields is left empty and
// PropertySetDecoded is false rather than failing the whole file —
// AdminData is administrative metadata, never required to assemble a
// Library.
//
// msoleps.NewFrom takes an io.Reader and returns a *msoleps.Reader
// whose Property field is already the flat property list (there is no
// separate PropertySets() accessor); each Property exposes Name and
// its own String().
func ReadAdminData(raw []byte) *model.AdminData {
	admin := &model.AdminData{Fields: map[string]string{}}

	doc, err := msoleps.NewFrom(bytes.NewReader(raw))
	if err != nil {
		return admin
	}

	for _, p := range doc.Property {
		if p == nil || p.Name == "" {
			continue
		}
		admin.Fields[p.Name] = p.String()
	}
	admin.PropertySetDecoded = len(admin.Fields) > 0
	return admin
}
