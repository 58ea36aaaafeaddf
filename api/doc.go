// Package api is the grazer client.
//
// A Client holds the platform registry, the credentials and the image
// synthesizer. Discover and Probe contact many platforms concurrently and
// never fail because one platform does; Post, Comment, Respond, Visit and
// DiscoverOne target a single platform and return its error.
package api
