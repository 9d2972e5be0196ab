package repodata

// SignatureType represents the signature scheme a repository is signed with
type SignatureType int

const (
	SignatureRSA SignatureType = iota
)

// String returns the string representation of SignatureType
func (s SignatureType) String() string {
	switch s {
	case SignatureRSA:
		return "rsa"
	default:
		return "unknown"
	}
}

// RepoMeta describes the signing metadata of a repository. It is purely
// descriptive: nothing in this package verifies signatures.
//
// No loader populates it yet; the signature side-channel of the archive is
// not read. Repodata.Meta is always nil until that is wired up.
type RepoMeta struct {
	PublicKey     string
	PublicKeySize int
	SignatureBy   string
	SignatureType SignatureType
}
