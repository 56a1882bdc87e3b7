package extract

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"encoding/pem"
	"strings"

	"github.com/swg-tools/sginfo/pkg/sysinfo/types"
)

const (
	pemBegin = "-----BEGIN CERTIFICATE-----"
	pemEnd   = "-----END CERTIFICATE-----"
)

// CACertificates extracts every inline ca-certificate block of the software
// configuration, keeps the PEM span and derives the X.509 attributes. A
// block without a parseable certificate keeps only its name and raw PEM.
func CACertificates(r *types.Report) {
	body, ok := r.Section(softwareConfiguration)
	if !ok {
		return
	}

	for _, b := range inlineBlocks(strings.Split(body, "\n"), "inline ca-certificate") {
		pemText := pemSpan(b.body)
		if pemText == "" {
			continue
		}
		cert := types.Certificate{Name: b.name, PEM: pemText}
		derive(&cert)

		if r.CACertificates == nil {
			r.CACertificates = map[string]types.Certificate{}
		}
		r.CACertificates[b.name] = cert
	}
}

func pemSpan(s string) string {
	start := strings.Index(s, pemBegin)
	if start < 0 {
		return ""
	}
	end := strings.Index(s[start:], pemEnd)
	if end < 0 {
		return ""
	}
	return s[start : start+end+len(pemEnd)]
}

func derive(cert *types.Certificate) {
	block, _ := pem.Decode([]byte(cert.PEM))
	if block == nil {
		return
	}
	c, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return
	}

	cert.SelfSigned = bytes.Equal(c.RawSubject, c.RawIssuer)
	s1 := sha1.Sum(c.Raw)
	s256 := sha256.Sum256(c.Raw)
	cert.SHA1Fingerprint = fingerprint(s1[:])
	cert.SHA256Fingerprint = fingerprint(s256[:])
	cert.PublicKey = base64.StdEncoding.EncodeToString(c.RawSubjectPublicKeyInfo)
	cert.PublicKeyAlgorithm = c.PublicKeyAlgorithm.String()
	cert.PublicKeyBits = publicKeyBits(c.PublicKey)
	cert.Subject = c.Subject.String()
	cert.Issuer = c.Issuer.String()
	cert.SerialNumber = strings.ToUpper(c.SerialNumber.Text(16))
	nb, na := c.NotBefore, c.NotAfter
	cert.NotBefore = &nb
	cert.NotAfter = &na
	cert.SignatureAlgorithm = c.SignatureAlgorithm.String()
}

func fingerprint(sum []byte) string {
	parts := make([]string, len(sum))
	for i, b := range sum {
		parts[i] = strings.ToUpper(hex.EncodeToString([]byte{b}))
	}
	return strings.Join(parts, ":")
}

func publicKeyBits(pub any) int {
	switch k := pub.(type) {
	case *rsa.PublicKey:
		return k.N.BitLen()
	case *ecdsa.PublicKey:
		return k.Curve.Params().BitSize
	case ed25519.PublicKey:
		return len(k) * 8
	default:
		return 0
	}
}
