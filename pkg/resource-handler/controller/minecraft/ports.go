package minecraft

const (
	// ServerPort is the plain game port the server listens on inside the pod.
	ServerPort int32 = 1337

	// TLSPort is the port the stunnel sidecar terminates TLS on.
	TLSPort int32 = 11337

	// TLSPortName names the TLS port on the container, Service and Route.
	TLSPortName = "mc-tls"
)
