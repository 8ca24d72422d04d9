package urls

// Repository is the project home page
const Repository = "https://github.com/muurk/vpilot"

// ConfigurationFormat describes the YAML layout of groups and devices
const ConfigurationFormat = Repository + "#configuration"

// Troubleshooting covers broadcasts that never reach the receivers
// (firewalls, wrong subnet broadcast address, blocked port)
const Troubleshooting = Repository + "#troubleshooting"
