package mail

import (
	"context"
	"fmt"
	"time"

	"teodity/pkg/logger"
)

const (
	queueSize    = 64
	maxAttempts  = 3
	retryBackoff = 2 * time.Second
)

type message struct {
	to      string
	subject string
	body    string
}

// Dispatcher implements service.Notifier. Messages are queued and sent from
// a single background worker with retry, so a slow or failing mail server
// never delays a request or rolls back a committed transition.
type Dispatcher struct {
	sender Sender
	queue  chan message
}

func NewDispatcher(sender Sender) *Dispatcher {
	return &Dispatcher{
		sender: sender,
		queue:  make(chan message, queueSize),
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-d.queue:
				d.deliver(msg)
			}
		}
	}()
}

func (d *Dispatcher) deliver(msg message) {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = d.sender.Send(msg.to, msg.subject, msg.body); err == nil {
			logger.Info("Email sent to %s: %s", msg.to, msg.subject)
			return
		}
		logger.Warn("Email attempt %d/%d to %s failed: %v", attempt, maxAttempts, msg.to, err)
		time.Sleep(time.Duration(attempt) * retryBackoff)
	}
	logger.Error("Giving up on email to %s (%s): %v", msg.to, msg.subject, err)
}

func (d *Dispatcher) enqueue(to, subject, body string) {
	if to == "" {
		return
	}
	select {
	case d.queue <- message{to: to, subject: subject, body: body}:
	default:
		logger.Warn("Email queue full, dropping message to %s: %s", to, subject)
	}
}

func (d *Dispatcher) ProductSold(buyerMail, sellerMail, productName string, price float64) {
	d.enqueue(buyerMail, "Purchase Approved - "+productName, fmt.Sprintf(`
		<h2>Purchase Approved!</h2>
		<p>Congratulations! Your purchase request for <strong>%q</strong> has been approved by the seller.</p>
		<p><strong>Price:</strong> %.2f RSD</p>
		<p>Please contact the seller to arrange payment and delivery.</p>
		<hr>
		<p>Thank you for using Teodity Market!</p>`, productName, price))

	d.enqueue(sellerMail, "Product Sold - "+productName, fmt.Sprintf(`
		<h2>Product Sold!</h2>
		<p>Your product <strong>%q</strong> has been successfully sold!</p>
		<p><strong>Price:</strong> %.2f RSD</p>
		<p>Please contact the buyer to arrange payment and delivery.</p>
		<hr>
		<p>Thank you for using Teodity Market!</p>`, productName, price))
}

func (d *Dispatcher) Outbid(bidderMail, productName string, newBidAmount float64) {
	d.enqueue(bidderMail, "You have been outbid - "+productName, fmt.Sprintf(`
		<h2>You have been outbid!</h2>
		<p>Someone has placed a higher bid on <strong>%q</strong>.</p>
		<p><strong>New highest bid:</strong> %.2f RSD</p>
		<p>Place a higher bid to stay in the auction!</p>
		<hr>
		<p>Visit Teodity Market to place your bid now!</p>`, productName, newBidAmount))
}

func (d *Dispatcher) AuctionWon(winnerMail, productName string, finalPrice float64) {
	d.enqueue(winnerMail, "Auction Won - "+productName, fmt.Sprintf(`
		<h2>Congratulations! You Won the Auction!</h2>
		<p>You won the auction for <strong>%q</strong>!</p>
		<p><strong>Your winning bid:</strong> %.2f RSD</p>
		<p>Please contact the seller to arrange payment and delivery.</p>
		<hr>
		<p>Thank you for using Teodity Market!</p>`, productName, finalPrice))
}

func (d *Dispatcher) ReportApproved(reporterMail, reportedUsername string) {
	d.enqueue(reporterMail, "Report Approved", fmt.Sprintf(`
		<h2>Report Approved</h2>
		<p>Your report against user <strong>%q</strong> has been reviewed and approved.</p>
		<p>The user has been blocked from the platform.</p>
		<p>Thank you for helping keep Teodity Market safe!</p>`, reportedUsername))
}

func (d *Dispatcher) ReportRejected(reporterMail, reportedUsername, adminComment string) {
	d.enqueue(reporterMail, "Report Rejected", fmt.Sprintf(`
		<h2>Report Rejected</h2>
		<p>Your report against user <strong>%q</strong> has been reviewed and rejected.</p>
		<p><strong>Reason:</strong> %s</p>
		<p>If you have further concerns, please contact support.</p>`, reportedUsername, adminComment))
}

func (d *Dispatcher) AccountBlocked(userMail, username string) {
	d.enqueue(userMail, "Account Blocked", fmt.Sprintf(`
		<h2>Account Blocked</h2>
		<p>Your account <strong>%q</strong> has been blocked due to violation of our terms of service.</p>
		<p>If you believe this was a mistake, please contact support.</p>`, username))
}
