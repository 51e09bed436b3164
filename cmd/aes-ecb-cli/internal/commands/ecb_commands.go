package commands

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/aes-ecb/internal/app"
	"github.com/MGTheTrain/aes-ecb/internal/domain/aesecb"
	"github.com/MGTheTrain/aes-ecb/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// generateKeyOptions holds the validated flags of generate-key
type generateKeyOptions struct {
	KeySize int    `validate:"aeskeysize"`
	KeyDir  string `validate:"required,dir"`
}

// ECBCommandHandler encapsulates logic for handling ECB operations via CLI.
type ECBCommandHandler struct {
	validate *validator.Validate
}

// NewECBCommandHandler initializes and returns an ECBCommandHandler instance.
func NewECBCommandHandler() (*ECBCommandHandler, error) {
	validate := validator.New()
	if err := validate.RegisterValidation("aeskeysize", validators.KeySizeValidation); err != nil {
		return nil, fmt.Errorf("failed to register key size validation: %w", err)
	}
	return &ECBCommandHandler{validate: validate}, nil
}

// GenerateKeyCmd generates a random AES key and stores it in the key directory under a UUID name
func (commandHandler *ECBCommandHandler) GenerateKeyCmd(cmd *cobra.Command, _ []string) error {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return fmt.Errorf("invalid key-size flag: %w", err)
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}

	opts := generateKeyOptions{KeySize: keySize, KeyDir: keyDir}
	if err := commandHandler.validate.Struct(opts); err != nil {
		return fmt.Errorf("invalid generate-key options: %w", err)
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	log, err := setupLogger(&cfg.Logger)
	if err != nil {
		return err
	}

	secretKey := make([]byte, keySize)
	defer clear(secretKey)
	if _, err := rand.Read(secretKey); err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}

	keyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-symmetric-key.bin", uuid.New()))
	if err := os.WriteFile(keyFilePath, secretKey, 0600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}

	log.Info("AES key saved to ", keyFilePath)
	fmt.Fprintln(cmd.OutOrStdout(), keyFilePath)
	return nil
}

// EncryptECBCmd encrypts a block aligned file with the symmetric key read from disk
func (commandHandler *ECBCommandHandler) EncryptECBCmd(cmd *cobra.Command, _ []string) error {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return fmt.Errorf("invalid input-file flag: %w", err)
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return fmt.Errorf("invalid output-file flag: %w", err)
	}
	symmetricKey, err := cmd.Flags().GetString("symmetric-key")
	if err != nil {
		return fmt.Errorf("invalid symmetric-key flag: %w", err)
	}

	plainText, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	if len(plainText)%aesecb.BlockSize != 0 {
		return fmt.Errorf("input file has %d bytes, ECB needs a multiple of %d", len(plainText), aesecb.BlockSize)
	}

	svc, log, err := newECBService(cmd)
	if err != nil {
		return err
	}

	key, err := os.ReadFile(filepath.Clean(symmetricKey))
	if err != nil {
		return fmt.Errorf("failed to read symmetric key: %w", err)
	}

	cipherText, err := encryptWithKey(svc, key, plainText)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputFilePath, cipherText, 0600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	log.Info("Encrypted data saved to ", outputFilePath, " using backend=", svc.Backend(), " strategy=", svc.Strategy())
	return nil
}

// encryptWithKey encrypts plainText under key, picking AES-128 or AES-256 from the key length.
// key and every copy of it made here are zeroed before returning.
func encryptWithKey(svc *app.ECBService, key, plainText []byte) ([]byte, error) {
	defer clear(key)

	var cipherText []byte
	switch len(key) {
	case aesecb.KeySize128:
		key128 := [aesecb.KeySize128]byte(key)
		defer clear(key128[:])
		err := svc.With128(key128, func(ks *aesecb.Schedule128) error {
			cipherText = svc.EncryptECB128(plainText, ks)
			return nil
		})
		return cipherText, err
	case aesecb.KeySize256:
		key256 := [aesecb.KeySize256]byte(key)
		defer clear(key256[:])
		err := svc.With256(key256, func(ks *aesecb.Schedule256) error {
			cipherText = svc.EncryptECB256(plainText, ks)
			return nil
		})
		return cipherText, err
	default:
		return nil, fmt.Errorf("symmetric key has %d bytes, want %d or %d", len(key), aesecb.KeySize128, aesecb.KeySize256)
	}
}

// SelfTestCmd runs the known answer tests through the selected backend and strategy
func (commandHandler *ECBCommandHandler) SelfTestCmd(cmd *cobra.Command, _ []string) error {
	svc, _, err := newECBService(cmd)
	if err != nil {
		return err
	}
	if err := svc.SelfTest(); err != nil {
		return fmt.Errorf("self test failed: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "self test passed: backend=%s strategy=%s\n", svc.Backend(), svc.Strategy())
	return nil
}

// InitECBCommands registers ECB-related commands
func InitECBCommands(rootCmd *cobra.Command) error {
	handler, err := NewECBCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create ECB command handler %w", err)
	}

	var generateKeyCmd = &cobra.Command{
		Use:   "generate-key",
		Short: "Generate an AES key",
		RunE:  handler.GenerateKeyCmd,
	}
	generateKeyCmd.Flags().IntP("key-size", "", aesecb.KeySize128, "AES key size in bytes, 16 for AES-128 or 32 for AES-256")
	generateKeyCmd.Flags().StringP("key-dir", "", "", "Directory to store the key")
	rootCmd.AddCommand(generateKeyCmd)

	var encryptECBCmd = &cobra.Command{
		Use:   "encrypt-ecb",
		Short: "Encrypt a block aligned file using AES-ECB",
		RunE:  handler.EncryptECBCmd,
	}
	encryptECBCmd.Flags().StringP("input-file", "", "", "Path to input file, its length must be a multiple of 16")
	encryptECBCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	encryptECBCmd.Flags().StringP("symmetric-key", "", "", "Path to the symmetric key")
	rootCmd.AddCommand(encryptECBCmd)

	var selfTestCmd = &cobra.Command{
		Use:   "self-test",
		Short: "Run the FIPS-197 known answer tests",
		RunE:  handler.SelfTestCmd,
	}
	rootCmd.AddCommand(selfTestCmd)

	return nil
}
