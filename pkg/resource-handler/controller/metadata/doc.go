// Package metadata holds the label and annotation conventions shared by every
// child of a Minecraft resource. The selector label set defined here is the
// only link between the server Deployment's pods and the Service in front of
// them.
package metadata
