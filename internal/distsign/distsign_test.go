package distsign

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"

	"github.com/Nsfr750/pack/internal/utils/shell"
)

func withMock(t *testing.T, commands []shell.MockCommand) *shell.MockExecutor {
	t.Helper()
	mock := shell.NewMockExecutor(commands)
	orig := shell.Default
	shell.Default = mock
	t.Cleanup(func() { shell.Default = orig })
	return mock
}

func TestSignFiles(t *testing.T) {
	mock := withMock(t, []shell.MockCommand{
		{Pattern: `command -v gpg`, Output: "/usr/bin/gpg"},
		{Pattern: `gpg --batch --yes --detach-sign --armor`, Output: ""},
	})

	sigs, err := SignFiles([]string{"/dist/a.whl", "/dist/a.tar.gz"}, "release@example.com")
	if err != nil {
		t.Fatalf("SignFiles failed: %v", err)
	}
	if len(sigs) != 2 || sigs[0] != "/dist/a.whl.asc" || sigs[1] != "/dist/a.tar.gz.asc" {
		t.Errorf("unexpected signature paths %v", sigs)
	}

	// One existence probe plus one gpg invocation per file.
	if len(mock.Calls) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(mock.Calls))
	}
	if !strings.Contains(mock.Calls[1].Cmd, "--local-user 'release@example.com'") {
		t.Errorf("expected key selection in command, got %q", mock.Calls[1].Cmd)
	}
}

func TestSignFilesStopsOnFailure(t *testing.T) {
	withMock(t, []shell.MockCommand{
		{Pattern: `command -v gpg`, Output: "/usr/bin/gpg"},
		{Pattern: `a\.whl`, Output: ""},
		{Pattern: `gpg`, Error: errors.New("gpg: signing failed")},
	})

	sigs, err := SignFiles([]string{"/dist/a.whl", "/dist/b.whl"}, "")
	if err == nil {
		t.Fatal("expected signing failure")
	}
	if len(sigs) != 1 {
		t.Errorf("expected the successful signature to be reported, got %v", sigs)
	}
}

func TestSignFilesRequiresGPG(t *testing.T) {
	withMock(t, []shell.MockCommand{
		{Pattern: `command -v gpg`, Output: ""},
	})

	if _, err := SignFiles([]string{"/dist/a.whl"}, ""); err == nil {
		t.Error("expected error when gpg is missing")
	}
}

func TestSignFilesEmptyList(t *testing.T) {
	if _, err := SignFiles(nil, ""); err == nil {
		t.Error("expected error for empty file list")
	}
}

func TestSignFilesRejectsQuotedInput(t *testing.T) {
	mock := withMock(t, []shell.MockCommand{
		{Pattern: `command -v gpg`, Output: "/usr/bin/gpg"},
	})

	if _, err := SignFiles([]string{"/dist/a.whl"}, "x' --yolo '"); err == nil {
		t.Error("expected error for quote in key id")
	}
	if _, err := SignFiles([]string{"/dist/a'.whl"}, ""); err == nil {
		t.Error("expected error for quote in file path")
	}
	// Only the gpg existence probes may run, never a signing command.
	for _, call := range mock.Calls {
		if strings.Contains(call.Cmd, "--detach-sign") {
			t.Errorf("signing command ran with unsafe input: %q", call.Cmd)
		}
	}
}

func TestVerifyDetached(t *testing.T) {
	dir := t.TempDir()

	entity, err := openpgp.NewEntity("Release Signer", "", "release@example.com", nil)
	if err != nil {
		t.Fatal(err)
	}

	content := []byte("wheel bytes go here")
	signedPath := filepath.Join(dir, "demo.whl")
	if err := os.WriteFile(signedPath, content, 0644); err != nil {
		t.Fatal(err)
	}

	var sigBuf bytes.Buffer
	if err := openpgp.ArmoredDetachSign(&sigBuf, entity, bytes.NewReader(content), nil); err != nil {
		t.Fatal(err)
	}
	sigPath := signedPath + SignatureSuffix
	if err := os.WriteFile(sigPath, sigBuf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	var pubBuf bytes.Buffer
	aw, err := armor.Encode(&pubBuf, openpgp.PublicKeyType, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := entity.Serialize(aw); err != nil {
		t.Fatal(err)
	}
	if err := aw.Close(); err != nil {
		t.Fatal(err)
	}
	keyringPath := filepath.Join(dir, "pubkey.asc")
	if err := os.WriteFile(keyringPath, pubBuf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	if err := VerifyDetached(signedPath, sigPath, keyringPath); err != nil {
		t.Errorf("expected valid signature, got %v", err)
	}

	// Tampering with the signed file must fail verification.
	if err := os.WriteFile(signedPath, []byte("tampered"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := VerifyDetached(signedPath, sigPath, keyringPath); err == nil {
		t.Error("expected verification failure for tampered content")
	}
}

func TestVerifyDetachedMissingFiles(t *testing.T) {
	dir := t.TempDir()
	if err := VerifyDetached(filepath.Join(dir, "a"), filepath.Join(dir, "b"), filepath.Join(dir, "c")); err == nil {
		t.Error("expected error for missing inputs")
	}
}
