package buffer

// ChangeSource identifies where a change originated.
type ChangeSource uint8

const (
	ChangeSourceLocal ChangeSource = iota
	ChangeSourceHost
	ChangeSourceHistory
)

// Edit describes the single contiguous replacement between two texts, in
// linear rune offsets of the text before the change.
type Edit struct {
	Start    int
	Deleted  string
	Inserted string
}

// Change is a versioned mutation payload.
type Change struct {
	Source        ChangeSource
	Op            OpKind // set for ChangeSourceLocal
	VersionBefore uint64
	VersionAfter  uint64
	OffsetBefore  int
	OffsetAfter   int
	Edit          Edit
}

type changeBuilder struct {
	source        ChangeSource
	versionBefore uint64
	offsetBefore  int
	edit          Edit
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	return b.lastChange, b.hasLastChange
}

func (b *Buffer) beginChange(source ChangeSource) changeBuilder {
	return changeBuilder{
		source:        source,
		versionBefore: b.version,
		offsetBefore:  b.Offset(),
	}
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		Source:        cb.source,
		VersionBefore: cb.versionBefore,
		VersionAfter:  b.version,
		OffsetBefore:  cb.offsetBefore,
		OffsetAfter:   b.Offset(),
		Edit:          cb.edit,
	}
	b.hasLastChange = true
}

// diffText trims the common prefix and suffix of before and after.
func diffText(before, after string) Edit {
	a, z := []rune(before), []rune(after)
	p := 0
	for p < len(a) && p < len(z) && a[p] == z[p] {
		p++
	}
	s := 0
	for s < len(a)-p && s < len(z)-p && a[len(a)-1-s] == z[len(z)-1-s] {
		s++
	}
	return Edit{
		Start:    p,
		Deleted:  string(a[p : len(a)-s]),
		Inserted: string(z[p : len(z)-s]),
	}
}
