package config

// Config is the parsed device tree: an ordered list of groups, each holding
// an ordered list of devices.
type Config struct {
	Groups []Group
}

// Group is a named collection of devices shown together on one panel.
type Group struct {
	Name    string
	Devices []Device
}

// Device is a single controllable device.
// Key is both the state key and the identifier sent on the wire.
type Device struct {
	Key   string
	Label string
}

// Empty reports whether the group has no devices.
// Empty groups are kept but excluded from navigation.
func (g Group) Empty() bool {
	return len(g.Devices) == 0
}

// Group returns the group with the given name, or nil if it doesn't exist.
func (c *Config) Group(name string) *Group {
	for i := range c.Groups {
		if c.Groups[i].Name == name {
			return &c.Groups[i]
		}
	}
	return nil
}

// NavigableGroups returns the non-empty groups in document order.
func (c *Config) NavigableGroups() []Group {
	groups := make([]Group, 0, len(c.Groups))
	for _, g := range c.Groups {
		if !g.Empty() {
			groups = append(groups, g)
		}
	}
	return groups
}

// DeviceKeys returns every device key across all groups in document order.
func (c *Config) DeviceKeys() []string {
	var keys []string
	for _, g := range c.Groups {
		for _, d := range g.Devices {
			keys = append(keys, d.Key)
		}
	}
	return keys
}

// HasDevice reports whether key names a device in any group.
func (c *Config) HasDevice(key string) bool {
	for _, g := range c.Groups {
		for _, d := range g.Devices {
			if d.Key == key {
				return true
			}
		}
	}
	return false
}

// DeviceCount returns the total number of devices.
func (c *Config) DeviceCount() int {
	n := 0
	for _, g := range c.Groups {
		n += len(g.Devices)
	}
	return n
}
