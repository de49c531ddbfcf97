// Package distsign signs distribution artifacts with GPG and verifies
// detached signatures.
package distsign

import (
	"fmt"
	"os"
	"strings"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/schollz/progressbar/v3"

	"github.com/Nsfr750/pack/internal/utils/logger"
	"github.com/Nsfr750/pack/internal/utils/shell"
)

var log = logger.Logger()

// SignatureSuffix is appended to each signed file.
const SignatureSuffix = ".asc"

// SignFiles creates an armored detached signature next to each file,
// overwriting existing signatures. keyID selects the signing key; empty
// uses the gpg default. Returns the signature paths.
func SignFiles(files []string, keyID string) ([]string, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files to sign")
	}
	if !shell.IsCommandExist("gpg") {
		return nil, fmt.Errorf("gpg is not available on this system")
	}
	// keyID and file paths end up inside single-quoted shell arguments.
	if strings.ContainsRune(keyID, '\'') {
		return nil, fmt.Errorf("invalid key id: %q", keyID)
	}
	for _, f := range files {
		if strings.ContainsRune(f, '\'') {
			return nil, fmt.Errorf("invalid file path: %q", f)
		}
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription("Signing"),
		progressbar.OptionSetWriter(os.Stderr),
	)

	var sigs []string
	for _, f := range files {
		cmd := "gpg --batch --yes --detach-sign --armor"
		if keyID != "" {
			cmd += " --local-user '" + keyID + "'"
		}
		cmd += " '" + f + "'"

		if _, err := shell.ExecCmdSilent(cmd, "", nil); err != nil {
			return sigs, fmt.Errorf("signing %s: %w", f, err)
		}
		sigs = append(sigs, f+SignatureSuffix)
		log.Debugf("Signed %s", f)
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	log.Infof("Signed %d file(s)", len(sigs))
	return sigs, nil
}

// VerifyDetached checks an armored detached signature against an
// armored public keyring.
func VerifyDetached(signedPath, sigPath, keyringPath string) error {
	keyringFile, err := os.Open(keyringPath)
	if err != nil {
		return fmt.Errorf("opening keyring %s: %w", keyringPath, err)
	}
	defer keyringFile.Close()

	keyring, err := openpgp.ReadArmoredKeyRing(keyringFile)
	if err != nil {
		return fmt.Errorf("reading keyring %s: %w", keyringPath, err)
	}

	signed, err := os.Open(signedPath)
	if err != nil {
		return fmt.Errorf("opening signed file %s: %w", signedPath, err)
	}
	defer signed.Close()

	sig, err := os.Open(sigPath)
	if err != nil {
		return fmt.Errorf("opening signature %s: %w", sigPath, err)
	}
	defer sig.Close()

	signer, err := openpgp.CheckArmoredDetachedSignature(keyring, signed, sig, nil)
	if err != nil {
		return fmt.Errorf("signature verification failed for %s: %w", signedPath, err)
	}

	if len(signer.Identities) > 0 {
		for name := range signer.Identities {
			log.Infof("Good signature from %q", name)
			break
		}
	}
	return nil
}
