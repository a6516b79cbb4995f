// Package digest computes hex-encoded message digests of cell text.
//
// Supported algorithms: MD2, MD5, SHA1, SHA256, SHA384, SHA512, SHA3_256,
// SHA3_512 and BLAKE2B_256. Input strings are hashed as UTF-8 bytes and the
// digest is returned as lowercase hex, two digits per byte.
package digest
