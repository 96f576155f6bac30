package params

const (
	SecParam = 256
	SecBytes = SecParam / 8

	// BytesScalar is the size of the canonical big-endian scalar encoding.
	BytesScalar = 32
	// BytesPoint is the size of the compressed point encoding.
	BytesPoint = 33
	// BytesShareID is the size of the little-endian share identifier encoding.
	BytesShareID = 4

	// HashBytes is the number of bytes drawn from the transcript hash before
	// reducing to a scalar.
	HashBytes = 2 * SecBytes
)
