// Package obfuscate implements the reversible text obfuscation pipeline and the machinery to run it
// over files.
//
// Encrypt binary encodes the plaintext and counts its set bits to derive the key, transposes the
// text over a grid as wide as the text, shifts every code point by the key (modulo 256) and
// returns the binary encoding of the result together with the key and the number of columns.
// Decrypt applies the inverse steps in the opposite order.
//
//	c, err := obfuscate.Encrypt("AB")
//	if err != nil {
//		log.Fatal(err)
//	}
//	// c.Binary: 0100010101000110, c.Key: 4, c.Columns: 2
//	plain, err := obfuscate.Decrypt(string(c.Binary), c.Key, c.Columns)
//
// The scheme is not secure in any way.
//
// Encoder and Decoder wrap the pipeline into envelopes read from and written to io.Reader and
// io.Writer values. To automate the work, implement a Tap and connect it to an Engine:
//
//	tap, err := taps.YourImplementationOfTap(...)
//
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	engine := obfuscate.NewEngine(workers, logger, tap)
//	engine.Start()
//
//	signals := make(chan os.Signal, 1)
//	signal.Notify(signals, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
//	<-signals
//
//	engine.Stop()
package obfuscate
