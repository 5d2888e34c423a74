package domain

import (
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"strings"
)

// CertificateIdentity is the parsed form of a client certificate subject.
// It is built once per request from the trusted proxy header and never
// persisted. Parsing preserves the original case of every field so that
// exact-match comparisons against stored subjects stay deterministic;
// proper-casing happens only in presentation helpers.
type CertificateIdentity struct {
	// Subject is the full distinguished name, e.g. "CN=DOE.JANE.1,OU=ORG".
	Subject string

	// OrganizationalUnits holds every OU attribute in subject order.
	OrganizationalUnits []string

	// CommonName is the raw CN attribute value.
	CommonName string

	// Parsed name parts, populated only when the CN follows the
	// LAST.FIRST.MIDDLE.SERIAL convention (at least two dot-separated
	// segments). Otherwise all four stay empty and CommonName is the
	// fallback display value.
	LastName   string
	FirstName  string
	MiddleName string
	Serial     string
}

// ParseIdentity parses a raw certificate subject string or a
// base64-encoded DER certificate into a CertificateIdentity.
//
// Input containing "CN=" is treated as a subject DN directly. Anything
// else is assumed to be a base64-encoded certificate whose subject DN is
// extracted. A failed decode or parse returns ErrMalformedCertificate so
// the caller can treat the request as unauthenticated rather than crash.
func ParseIdentity(raw string) (*CertificateIdentity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrUnauthenticated
	}

	subject := raw
	if !strings.Contains(raw, "CN=") {
		decoded, err := decodeCertificateSubject(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCertificate, err)
		}
		subject = decoded
	}

	identity := &CertificateIdentity{Subject: subject}

	for _, attr := range strings.Split(subject, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(attr), "=")
		if !found {
			continue
		}
		switch strings.ToUpper(strings.TrimSpace(key)) {
		case "CN":
			if identity.CommonName == "" {
				identity.CommonName = strings.TrimSpace(value)
			}
		case "OU":
			identity.OrganizationalUnits = append(identity.OrganizationalUnits, strings.TrimSpace(value))
		}
	}

	identity.parseCommonName()
	return identity, nil
}

// decodeCertificateSubject base64-decodes a DER certificate and renders
// its subject DN. Both standard and URL-safe encodings are accepted since
// proxies differ in how they forward the certificate.
func decodeCertificateSubject(raw string) (string, error) {
	der, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		der, err = base64.URLEncoding.DecodeString(raw)
		if err != nil {
			return "", fmt.Errorf("base64 decode failed: %w", err)
		}
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return "", fmt.Errorf("certificate parse failed: %w", err)
	}

	return cert.Subject.String(), nil
}

// parseCommonName decomposes the CN using the dot-delimited
// LAST.FIRST.MIDDLE.SERIAL convention. A CN with fewer than two segments
// is left untouched; not every identity follows the convention and that
// is not an error.
func (i *CertificateIdentity) parseCommonName() {
	segments := strings.Split(i.CommonName, ".")
	if len(segments) < 2 {
		return
	}

	i.LastName = segments[0]
	i.FirstName = segments[1]

	var middle []string
	for _, segment := range segments[2:] {
		if segment == "" {
			continue
		}
		if isDigits(segment) {
			i.Serial = segment
			continue
		}
		middle = append(middle, segment)
	}
	i.MiddleName = strings.Join(middle, " ")
}

// HasParsedName reports whether the CN followed the dot-delimited naming
// convention and name parts were extracted.
func (i *CertificateIdentity) HasParsedName() bool {
	return i.LastName != "" && i.FirstName != ""
}

// DisplayName renders "First Last" in proper case for presentation. When
// the CN did not follow the naming convention the raw CN is returned
// unchanged as the fallback display value.
func (i *CertificateIdentity) DisplayName() string {
	if !i.HasParsedName() {
		return i.CommonName
	}
	return properCase(i.FirstName) + " " + properCase(i.LastName)
}

// FormalName renders "Last, First Middle" in proper case for presentation.
func (i *CertificateIdentity) FormalName() string {
	if !i.HasParsedName() {
		return i.CommonName
	}
	name := properCase(i.LastName) + ", " + properCase(i.FirstName)
	if i.MiddleName != "" {
		name += " " + properCase(i.MiddleName)
	}
	return name
}

func properCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
