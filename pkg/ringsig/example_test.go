package ringsig_test

import (
	"crypto/rand"
	"fmt"

	"github.com/ringlink/ringsig-go/pkg/ringsig"
	"github.com/ringlink/ringsig-go/pkg/ringsig/curve"
)

func Example() {
	scheme := ringsig.NewEd25519()

	// Three members; Alice signs on behalf of the ring.
	alice, err := scheme.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	bob, err := scheme.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	carol, err := scheme.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	ring := []curve.Point{alice.Public, bob.Public, carol.Public}

	message := []byte("big brother is watching")
	sig, err := scheme.Sign(rand.Reader, message, ring, alice)
	if err != nil {
		panic(err)
	}

	fmt.Println(scheme.Verify(message, sig))
	fmt.Println(scheme.Verify([]byte("some other message"), sig))

	// A second signature by the same key is linkable to the first even
	// though the messages differ.
	sig2, err := scheme.Sign(rand.Reader, []byte("vote: yes"), ring, alice)
	if err != nil {
		panic(err)
	}
	fmt.Println(ringsig.Linked(sig, sig2))

	// Output:
	// true
	// false
	// true
}
