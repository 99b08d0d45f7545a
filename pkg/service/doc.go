// Package service ties pairing, the remote session and discovery together
// behind one client.
//
// A Client connects to a TV by host. When no client identity exists yet
// it first runs the pairing protocol on port 6467 and waits for the user
// to enter the code shown on the TV (see SendSecret). Once paired, or
// straight away when an identity is present, it opens the remote session
// on port 6466.
//
//	provider, _ := identity.NewProvider(identity.Config{
//		Store:       identity.NewFileStore(dir),
//		TrustPolicy: identity.AcceptAny(),
//	})
//	cfg := service.DefaultConfig()
//	cfg.Identity = provider
//
//	client, _ := service.NewClient(cfg)
//	err := client.Connect(ctx, "192.168.1.20", listener)
//	...
//	client.SendCommand(wire.KeyCodeVolumeUp, wire.DirectionShort)
//	client.Disconnect()
//
// Progress is reported to a Listener passed to Connect. Handlers
// registered with OnEvent receive the same progress as Events, plus
// discovery and notification events.
package service
