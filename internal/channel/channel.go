package channel

import "strings"

type Kind int

const (
	Public Kind = iota
	Private
	Presence
)

const (
	PresencePrefix         = "presence-"
	PrivateEncryptedPrefix = "private-encrypted-"
	PrivatePrefix          = "private-"
)

// Checked in order: presence names are also guarded names, and the encrypted
// prefix is itself a private prefix.
var guardPrefixes = []struct {
	prefix string
	kind   Kind
}{
	{PresencePrefix, Presence},
	{PrivateEncryptedPrefix, Private},
	{PrivatePrefix, Private},
}

func (k Kind) String() string {
	switch k {
	case Private:
		return "private"
	case Presence:
		return "presence"
	default:
		return "public"
	}
}

func (k Kind) IsGuarded() bool {
	return k == Private || k == Presence
}

// Name is a classified channel name. Canonical is the raw name without its
// kind prefix and is what authorization patterns are matched against.
type Name struct {
	Raw       string
	Kind      Kind
	Canonical string
	Prefix    string
}

func Classify(raw string) Name {
	for _, g := range guardPrefixes {
		if strings.HasPrefix(raw, g.prefix) {
			return Name{
				Raw:       raw,
				Kind:      g.kind,
				Canonical: raw[len(g.prefix):],
				Prefix:    g.prefix,
			}
		}
	}

	return Name{Raw: raw, Kind: Public, Canonical: raw}
}

func ClassifyAll(raw []string) []Name {
	names := make([]Name, 0, len(raw))
	for _, r := range raw {
		names = append(names, Classify(r))
	}
	return names
}

// Format returns the provider wire name.
func (n Name) Format() string {
	return n.Prefix + n.Canonical
}

func (n Name) IsGuarded() bool {
	return n.Kind.IsGuarded()
}

func (n Name) IsEncrypted() bool {
	return n.Prefix == PrivateEncryptedPrefix
}

func (n Name) String() string {
	return n.Format()
}
