package testutil

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// GenerateSelfSignedCert 테스트용 자체 서명 인증서와 키 파일을 생성하고
// 파일 경로 쌍(cert, key)을 반환합니다. 생성된 파일은 테스트 종료 시 자동으로 삭제됩니다.
func GenerateSelfSignedCert(t testing.TB) (certFile, keyFile string) {
	t.Helper()

	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("개인 키 생성에 실패하였습니다: %v", err)
	}

	template := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject: pkix.Name{
			Organization: []string{"product-search-server test"},
		},
		NotBefore: time.Now(),
		NotAfter:  time.Now().Add(time.Hour),

		KeyUsage:              x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		IPAddresses:           []net.IP{net.ParseIP("127.0.0.1")},
		DNSNames:              []string{"localhost"},
	}

	derBytes, err := x509.CreateCertificate(rand.Reader, &template, &template, &priv.PublicKey, priv)
	if err != nil {
		t.Fatalf("인증서 생성에 실패하였습니다: %v", err)
	}

	privBytes, err := x509.MarshalECPrivateKey(priv)
	if err != nil {
		t.Fatalf("개인 키 인코딩에 실패하였습니다: %v", err)
	}

	tempDir := t.TempDir()
	certFile = filepath.Join(tempDir, "cert.pem")
	keyFile = filepath.Join(tempDir, "key.pem")

	writePEMFile(t, certFile, &pem.Block{Type: "CERTIFICATE", Bytes: derBytes})
	writePEMFile(t, keyFile, &pem.Block{Type: "EC PRIVATE KEY", Bytes: privBytes})
	return certFile, keyFile
}

func writePEMFile(t testing.TB, path string, block *pem.Block) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("%s 파일 생성에 실패하였습니다: %v", path, err)
	}
	defer f.Close()

	if err := pem.Encode(f, block); err != nil {
		t.Fatalf("%s 파일 기록에 실패하였습니다: %v", path, err)
	}
}
