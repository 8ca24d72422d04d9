// Package remote holds the device state store and the on/off dispatcher.
//
// Every configured device starts off. TurnOn and TurnOff flip the state and
// broadcast the matching command; calling either in the state the device is
// already in does nothing and sends nothing. The two buttons of a device are
// derived from its state by Controls, so they are always complementary.
//
// When a send fails the state change is undone and the error is returned;
// there is no retry.
package remote
