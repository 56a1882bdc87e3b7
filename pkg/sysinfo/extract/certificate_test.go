package extract_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/base64"
	"encoding/hex"
	"encoding/pem"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/swg-tools/sginfo/pkg/sysinfo/extract"
	"github.com/swg-tools/sginfo/pkg/sysinfo/types"
)

func colonHex(sum []byte) string {
	parts := make([]string, len(sum))
	for i, b := range sum {
		parts[i] = strings.ToUpper(hex.EncodeToString([]byte{b}))
	}
	return strings.Join(parts, ":")
}

func TestCACertificates(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	notBefore := time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC)
	notAfter := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	template := &x509.Certificate{
		SerialNumber:          big.NewInt(0xABCD),
		Subject:               pkix.Name{CommonName: "Test Root CA"},
		NotBefore:             notBefore,
		NotAfter:              notAfter,
		IsCA:                  true,
		KeyUsage:              x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("create certificate: %v", err)
	}
	pemText := string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}))

	parsed, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatalf("parse certificate: %v", err)
	}

	s1 := sha1.Sum(der)
	s256 := sha256.Sum256(der)

	r := &types.Report{Sections: map[string]string{
		"Software Configuration": strings.Join([]string{
			"inline ca-certificate \"TestRoot\" end-9-inline",
			strings.TrimSuffix(pemText, "\n"),
			"end-9-inline",
			"inline ca-certificate \"Broken\" end-11-inline",
			"no pem here",
			"end-11-inline",
		}, "\n"),
	}}
	extract.CACertificates(r)

	want := map[string]types.Certificate{
		"TestRoot": {
			Name:               "TestRoot",
			PEM:                strings.TrimSuffix(pemText, "\n"),
			SelfSigned:         true,
			SHA1Fingerprint:    colonHex(s1[:]),
			SHA256Fingerprint:  colonHex(s256[:]),
			PublicKey:          base64.StdEncoding.EncodeToString(parsed.RawSubjectPublicKeyInfo),
			PublicKeyAlgorithm: "ECDSA",
			PublicKeyBits:      256,
			Subject:            "CN=Test Root CA",
			Issuer:             "CN=Test Root CA",
			SerialNumber:       "ABCD",
			NotBefore:          &notBefore,
			NotAfter:           &notAfter,
			SignatureAlgorithm: parsed.SignatureAlgorithm.String(),
		},
	}
	if diff := cmp.Diff(want, r.CACertificates); diff != "" {
		t.Errorf("CACertificates() (-expected +got):\n%s", diff)
	}
}

func TestCACertificatesNoSection(t *testing.T) {
	r := &types.Report{}
	extract.CACertificates(r)
	if r.CACertificates != nil {
		t.Errorf("CACertificates() = %v, want nil", r.CACertificates)
	}
}
