package curve

import (
	"golang.org/x/crypto/sha3"
)

// DhSecret is opaque symmetric key material derived from a group element.
type DhSecret []byte

// PointToDhSecret hashes the compressed encoding of p into key material.
func PointToDhSecret(p *Point) (DhSecret, error) {
	data, err := p.MarshalBinary()
	if err != nil {
		return nil, err
	}
	digest := sha3.Sum256(data)
	return digest[:], nil
}
