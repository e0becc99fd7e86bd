// Package services implements the driving port interfaces.
// Services contain the core client logic (the submission state machine,
// response classification and settings resolution) and orchestrate
// calls to driven ports (adapters).
package services
