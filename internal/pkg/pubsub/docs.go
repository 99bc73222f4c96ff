// Package pubsub is an in-process topic broker.
//
// A Broker fans each published message out to the live subscriptions of its
// topic whose filter accepts it. Delivery properties:
//   - a subscription receives the messages of a topic in publish order
//   - a slow subscriber never blocks Publish or other subscribers
//   - there is no replay: a subscription only sees messages published after it was registered
//   - closing a subscription (or cancelling its context) deregisters it at once
//   - messages racing with a close are dropped silently
//
// The broker lives in one process. It offers no durability and no fan-out
// across instances.
package pubsub
