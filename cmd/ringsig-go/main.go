// Command ringsig-go generates key pairs, derives key images, signs messages
// against a ring of public keys, and verifies ring signatures. Keys and
// signatures are stored as armored text files.
package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/ringlink/ringsig-go/internal/keystore"
	"github.com/ringlink/ringsig-go/pkg/ringsig"
	"github.com/ringlink/ringsig-go/pkg/ringsig/logging"
)

var errVerificationFailed = errors.New("verification failed")

var (
	opts struct {
		Verbose bool `short:"v" long:"verbose" description:"Enable debug logging"`
	}

	scheme = ringsig.NewEd25519()
	store  = keystore.NewEd25519()
	logger = logging.New(nil)
)

type keygenCommand struct {
	Secret string `short:"s" long:"secret" default:"ringsig.key" description:"Secret key output path"`
	Public string `short:"p" long:"public" default:"ringsig.pub" description:"Public key output path"`
}

func (c *keygenCommand) Execute(args []string) error {
	kp, err := scheme.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}
	defer kp.Zeroize()
	if err := store.SaveKeyPair(c.Secret, c.Public, kp); err != nil {
		return err
	}
	logger.Debug(context.Background(), "key pair generated",
		"public_path", c.Public, logging.Redacted("secret"))
	fmt.Printf("wrote %s and %s\n", c.Secret, c.Public)
	return nil
}

type keyimageCommand struct {
	Secret string `short:"s" long:"secret" default:"ringsig.key" description:"Secret key path"`
}

func (c *keyimageCommand) Execute(args []string) error {
	kp, err := store.LoadKeyPair(c.Secret)
	if err != nil {
		return err
	}
	defer kp.Zeroize()
	image, err := scheme.KeyImage(kp)
	if err != nil {
		return err
	}
	fmt.Println(base64.StdEncoding.EncodeToString(image[:]))
	return nil
}

type signCommand struct {
	Secret string   `short:"s" long:"secret" default:"ringsig.key" description:"Secret key path"`
	Ring   []string `short:"r" long:"ring" required:"true" description:"Public key path, repeatable; the ring must include the signer's key"`
	Out    string   `short:"o" long:"out" default:"message.sig" description:"Signature output path"`
	Args   struct {
		Message flags.Filename `positional-arg-name:"message-file"`
	} `positional-args:"yes" required:"yes"`
}

func (c *signCommand) Execute(args []string) error {
	ctx := context.Background()
	kp, err := store.LoadKeyPair(c.Secret)
	if err != nil {
		return err
	}
	defer kp.Zeroize()
	ring, err := store.LoadRing(c.Ring)
	if err != nil {
		return err
	}
	message, err := os.ReadFile(string(c.Args.Message))
	if err != nil {
		return fmt.Errorf("read message: %w", err)
	}
	logger.Debug(ctx, "signing", "ring_size", len(ring), "message_bytes", len(message))
	sig, err := scheme.Sign(rand.Reader, message, ring, kp)
	if err != nil {
		return err
	}
	if err := store.SaveSignature(c.Out, sig); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", c.Out)
	return nil
}

type verifyCommand struct {
	Signature string `short:"i" long:"signature" default:"message.sig" description:"Signature path"`
	Args      struct {
		Message flags.Filename `positional-arg-name:"message-file"`
	} `positional-args:"yes" required:"yes"`
}

func (c *verifyCommand) Execute(args []string) error {
	sig, err := store.LoadSignature(c.Signature)
	if err != nil {
		return err
	}
	message, err := os.ReadFile(string(c.Args.Message))
	if err != nil {
		return fmt.Errorf("read message: %w", err)
	}
	if !scheme.Verify(message, sig) {
		fmt.Println("verification: FAILED")
		return errVerificationFailed
	}
	fmt.Println("verification: OK")
	return nil
}

type versionCommand struct{}

func (c *versionCommand) Execute(args []string) error {
	fmt.Println("ringsig-go", ringsig.Version)
	return nil
}

func main() {
	parser := flags.NewNamedParser("ringsig-go", flags.Default)
	if _, err := parser.AddGroup("Application Options", "", &opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	addCommand(parser, "keygen", "Generate a key pair",
		"Generate a fresh key pair and write it to armored files.", &keygenCommand{})
	addCommand(parser, "keyimage", "Print a key's linkability tag",
		"Derive the key image of a secret key; identical keys always produce identical images.", &keyimageCommand{})
	addCommand(parser, "sign", "Sign a message against a ring",
		"Produce a ring signature for a message file using the given ring of public keys.", &signCommand{})
	addCommand(parser, "verify", "Verify a ring signature",
		"Check a signature against a message file; exits non-zero on failure.", &verifyCommand{})
	addCommand(parser, "version", "Print the tool version",
		"Print the build version set via ldflags.", &versionCommand{})

	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		configureLogging()
		return cmd.Execute(args)
	}

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return
		}
		if !errors.Is(err, errVerificationFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func addCommand(parser *flags.Parser, name, short, long string, cmd flags.Commander) {
	if _, err := parser.AddCommand(name, short, long, cmd); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func configureLogging() {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger = logging.New(slog.New(handler))
}
