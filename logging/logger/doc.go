// Package logger wraps logrus with a process-wide logger whose methods take a
// context and add the request trace id and application version as fields.
package logger
