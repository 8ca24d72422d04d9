// Package protocol implements the vpilot command wire format.
//
// Every command is a single UDP datagram whose payload is the UTF-8 string
//
//	on <device_key>
//	off <device_key>
//
// with no length prefix, checksum, envelope or terminator. Receivers match
// on the device key; there are no acknowledgements and no sequence numbers.
//
// # Usage Example - Construction
//
//	payload := protocol.On("lamp1").Encode() // []byte("on lamp1")
//
// # Usage Example - Parsing
//
//	cmd, err := protocol.Parse(datagram)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s -> %s\n", cmd.Key, cmd.Action)
//
// All functions are stateless and safe for concurrent use.
package protocol
