// Package capture reads and writes gaze capture files.
//
// A capture file is a sequence of CBOR data items: one Header followed by
// one Record per received sample, in the order they were received. Files
// are appended to while a session runs and can be replayed through the
// replay driver.
package capture
