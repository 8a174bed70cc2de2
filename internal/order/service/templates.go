package service

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"artistic-unity/internal/domain"
)

type emailImage struct {
	Name   string
	SizeMB string
	CID    string
}

type emailData struct {
	OrderNumber        string
	OrderDate          string
	CustomerName       string
	CustomerEmail      string
	CustomerPhone      string
	CustomerWhatsapp   string
	CustomerAddress    string
	FrameName          string
	FrameCategory      string
	FrameDescription   string
	SizeText           string
	Quantity           int
	UnitPrice          string
	TotalPrice         string
	CollageSize        string
	CollageOrientation string
	CollageCategory    string
	CollageSelected    bool
	CollageImage       string
	FrameType          string
	FrameDesignChosen  bool
	FrameDesignImage   string
	Images             []emailImage
	Requests           template.HTML
	HasRequests        bool
	OrderSource        string
	BrowserInfo        string
	OrderTimestamp     string
	Year               int
}

const sharedStyles = `
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #333; background-color: #f9f9f9; margin: 0; padding: 0; }
    .container { max-width: 700px; margin: 0 auto; padding: 20px; background-color: #ffffff; border-radius: 8px; }
    .header { text-align: center; padding: 20px 0; background: linear-gradient(135deg, #6a11cb 0%, #2575fc 100%); color: white; border-radius: 8px 8px 0 0; margin: -20px -20px 20px; }
    .logo { font-size: 28px; font-weight: bold; margin-bottom: 5px; }
    .tagline { font-size: 14px; opacity: 0.8; }
    h2 { color: #6a11cb; border-bottom: 2px solid #f0f0f0; padding-bottom: 10px; margin-top: 30px; }
    h3 { color: #2575fc; margin-top: 25px; margin-bottom: 15px; }
    .section { margin-bottom: 25px; }
    .detail-row { display: flex; margin-bottom: 8px; border-bottom: 1px solid #f0f0f0; padding-bottom: 8px; }
    .detail-label { font-weight: bold; width: 40%; color: #555; }
    .detail-value { width: 60%; }
    .price { font-size: 20px; color: #2575fc; font-weight: bold; }
    .highlight { background-color: #f8f4ff; padding: 15px; border-radius: 6px; margin: 15px 0; }
    .requests { background-color: #fff8e6; padding: 15px; border-radius: 6px; margin: 15px 0; border-left: 4px solid #ffc107; }
    .selection-box { background-color: #f0f7ff; padding: 15px; border-radius: 6px; margin: 15px 0; border-left: 4px solid #2575fc; }
    .image-preview { max-width: 200px; max-height: 200px; border: 2px solid #ddd; border-radius: 4px; margin: 10px 0; }
    .status-badge { display: inline-block; padding: 4px 8px; border-radius: 4px; font-size: 12px; font-weight: bold; }
    .status-selected { background-color: #d4edda; color: #155724; }
    .status-not-selected { background-color: #f8d7da; color: #721c24; }
    .order-id { background-color: #e9ecef; padding: 10px; border-radius: 4px; text-align: center; font-weight: bold; margin-bottom: 20px; }
    .user-images-section { background-color: #f0f9ff; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #10b981; }
    .footer { text-align: center; margin-top: 30px; font-size: 12px; color: #999; }
`

const userImagesPartial = `
{{define "userImages"}}
{{if .Images}}
<div style="margin-top: 20px;">
  <h4 style="color: #2575fc; margin-bottom: 15px;">Customer Uploaded Images ({{len .Images}})</h4>
  <div style="display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 15px;">
    {{range .Images}}
    <div style="border: 2px solid #ddd; border-radius: 8px; overflow: hidden; background: white;">
      <img src="cid:{{.CID}}" alt="{{.Name}}" style="width: 100%; height: 150px; object-fit: cover;">
      <div style="padding: 8px; font-size: 12px; color: #666; text-align: center;">
        <strong>{{.Name}}</strong><br>
        Size: {{.SizeMB}} MB
      </div>
    </div>
    {{end}}
  </div>
</div>
{{else}}
<p>No images uploaded by customer.</p>
{{end}}
{{end}}`

const ownerEmailTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>New Order Notification</title>
  <style>` + sharedStyles + `</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <div class="logo">The Artistic Unity</div>
      <div class="tagline">Creating Beautiful Memories</div>
    </div>
    <div class="order-id">Order ID: #{{.OrderNumber}} | {{.OrderDate}}</div>
    <h2>New Order Received!</h2>

    <div class="section">
      <h3>Customer Information</h3>
      <div class="detail-row"><div class="detail-label">Name:</div><div class="detail-value">{{.CustomerName}}</div></div>
      <div class="detail-row"><div class="detail-label">Email:</div><div class="detail-value">{{.CustomerEmail}}</div></div>
      <div class="detail-row"><div class="detail-label">Phone:</div><div class="detail-value">{{.CustomerPhone}}</div></div>
      <div class="detail-row"><div class="detail-label">WhatsApp:</div><div class="detail-value">{{if .CustomerWhatsapp}}{{.CustomerWhatsapp}}{{else}}Not provided{{end}}</div></div>
      <div class="detail-row"><div class="detail-label">Address:</div><div class="detail-value">{{.CustomerAddress}}</div></div>
    </div>

    <div class="section">
      <h3>Frame &amp; Order Details</h3>
      <div class="highlight">
        <div class="detail-row"><div class="detail-label">Frame Type:</div><div class="detail-value">{{.FrameName}}</div></div>
        <div class="detail-row"><div class="detail-label">Frame Category:</div><div class="detail-value">{{.FrameCategory}}</div></div>
        <div class="detail-row"><div class="detail-label">Frame Description:</div><div class="detail-value">{{if .FrameDescription}}{{.FrameDescription}}{{else}}Not provided{{end}}</div></div>
        <div class="detail-row"><div class="detail-label">Size:</div><div class="detail-value">{{.SizeText}}</div></div>
        <div class="detail-row"><div class="detail-label">Quantity:</div><div class="detail-value">{{.Quantity}}</div></div>
        <div class="detail-row"><div class="detail-label">Unit Price:</div><div class="detail-value">{{.UnitPrice}}</div></div>
      </div>
      <div class="detail-row" style="border-top: 2px solid #e0e0e0; margin-top: 15px; padding-top: 15px;">
        <div class="detail-label">Total Price:</div><div class="detail-value price">{{.TotalPrice}}</div>
      </div>
    </div>

    <div class="section">
      <h3>Collage Selection Details</h3>
      <div class="selection-box">
        <div class="detail-row"><div class="detail-label">Collage Size:</div><div class="detail-value">{{if .CollageSize}}{{.CollageSize}}{{else}}Not specified{{end}}</div></div>
        <div class="detail-row"><div class="detail-label">Orientation:</div><div class="detail-value">{{if .CollageOrientation}}{{.CollageOrientation}}{{else}}Not specified{{end}}</div></div>
        <div class="detail-row"><div class="detail-label">Category:</div><div class="detail-value">{{.CollageCategory}}</div></div>
        <div class="detail-row"><div class="detail-label">Collage Design:</div>
          <div class="detail-value">{{if .CollageSelected}}<span class="status-badge status-selected">Selected</span>{{else}}<span class="status-badge status-not-selected">Not Selected</span>{{end}}</div>
        </div>
        {{if .CollageSelected}}
        <div style="margin-top: 15px;">
          <strong>Selected Collage Design:</strong><br>
          <img src="{{.CollageImage}}" alt="Selected Collage" class="image-preview" style="max-width: 300px; max-height: 300px;">
        </div>
        {{end}}
      </div>
    </div>

    <div class="section">
      <h3>Frame Customization Details</h3>
      <div class="selection-box">
        <div class="detail-row"><div class="detail-label">Frame Type:</div><div class="detail-value">{{.FrameType}}</div></div>
        <div class="detail-row"><div class="detail-label">Frame Design:</div>
          <div class="detail-value">{{if .FrameDesignChosen}}<span class="status-badge status-selected">Selected</span>{{else}}<span class="status-badge status-not-selected">Not Selected</span>{{end}}</div>
        </div>
        {{if .FrameDesignChosen}}
        <div style="margin-top: 15px;">
          <strong>Selected Frame Design:</strong><br>
          <img src="{{.FrameDesignImage}}" alt="Selected Frame" class="image-preview" style="max-width: 250px; max-height: 250px;">
        </div>
        {{end}}
      </div>
    </div>

    <div class="section">
      <h3>Customer Uploaded Images</h3>
      <div class="user-images-section">
        <div class="detail-row"><div class="detail-label">Images Count:</div>
          <div class="detail-value">{{if .Images}}<span class="status-badge status-selected">{{len .Images}} images uploaded</span>{{else}}<span class="status-badge status-not-selected">No images uploaded</span>{{end}}</div>
        </div>
        {{template "userImages" .}}
      </div>
    </div>

    {{if .HasRequests}}
    <div class="section">
      <h3>Special Requests</h3>
      <div class="requests">{{.Requests}}</div>
    </div>
    {{end}}

    <div class="section">
      <h3>Technical Information</h3>
      <div style="font-size: 12px; color: #666;">
        <p><strong>Browser:</strong> {{if .BrowserInfo}}{{.BrowserInfo}}{{else}}Not available{{end}}</p>
        <p><strong>Order Timestamp:</strong> {{if .OrderTimestamp}}{{.OrderTimestamp}}{{else}}Not available{{end}}</p>
        <p><strong>Order Source:</strong> {{if .OrderSource}}{{.OrderSource}}{{else}}Website{{end}}</p>
      </div>
    </div>

    <div class="footer">
      <p>This is an automated notification from The Artistic Unity ordering system.</p>
      <p>&copy; {{.Year}} The Artistic Unity. All rights reserved.</p>
    </div>
  </div>
</body>
</html>` + userImagesPartial

const customerEmailTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Order Confirmation</title>
  <style>` + sharedStyles + `</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <div class="logo">The Artistic Unity</div>
      <div class="tagline">Creating Beautiful Memories</div>
    </div>
    <div class="order-id">Order ID: #{{.OrderNumber}}</div>
    <h2>Thank You for Your Order!</h2>

    <div class="selection-box">
      <p>Dear {{.CustomerName}},</p>
      <p>Thank you for choosing The Artistic Unity. We have received your order and are working on it with care and attention to detail.</p>
      <p>We will contact you shortly to confirm delivery details.</p>
    </div>

    <div class="section">
      <h3>Your Order Details</h3>
      <div class="highlight">
        <div class="detail-row"><div class="detail-label">Frame:</div><div class="detail-value">{{.FrameName}}</div></div>
        <div class="detail-row"><div class="detail-label">Frame Category:</div><div class="detail-value">{{.FrameCategory}}</div></div>
        <div class="detail-row"><div class="detail-label">Size:</div><div class="detail-value">{{.SizeText}}</div></div>
        <div class="detail-row"><div class="detail-label">Orientation:</div><div class="detail-value">{{if .CollageOrientation}}{{.CollageOrientation}}{{else}}Not specified{{end}}</div></div>
        <div class="detail-row"><div class="detail-label">Collage Category:</div><div class="detail-value">{{.CollageCategory}}</div></div>
        <div class="detail-row"><div class="detail-label">Your Images:</div><div class="detail-value">{{if .Images}}{{len .Images}} images uploaded{{else}}None uploaded{{end}}</div></div>
        <div class="detail-row"><div class="detail-label">Quantity:</div><div class="detail-value">{{.Quantity}}</div></div>
        <div class="detail-row"><div class="detail-label">Unit Price:</div><div class="detail-value">{{.UnitPrice}}</div></div>
      </div>
      <div class="detail-row" style="border-top: 2px solid #e0e0e0; margin-top: 15px; padding-top: 15px;">
        <div class="detail-label">Total Price:</div><div class="detail-value price">{{.TotalPrice}}</div>
      </div>
    </div>

    {{if .CollageSelected}}
    <div class="section">
      <h3>Your Selected Collage Design</h3>
      <div class="selection-box">
        <p>Here's the collage design you selected:</p>
        <div style="text-align: center;">
          <img src="{{.CollageImage}}" alt="Your Selected Collage" class="image-preview" style="max-width: 300px; max-height: 300px;">
        </div>
      </div>
    </div>
    {{end}}

    {{if .FrameDesignChosen}}
    <div class="section">
      <h3>Your Selected Frame Design</h3>
      <div class="selection-box">
        <p>Here's the frame design you selected:</p>
        <div style="text-align: center;">
          <img src="{{.FrameDesignImage}}" alt="Your Selected Frame" class="image-preview" style="max-width: 250px; max-height: 250px;">
        </div>
      </div>
    </div>
    {{end}}

    {{if .Images}}
    <div class="section">
      <h3>Your Uploaded Images</h3>
      <div class="user-images-section">
        <p>Here are the {{len .Images}} image(s) you uploaded for your custom collage:</p>
        {{template "userImages" .}}
        <p style="margin-top: 15px; font-size: 14px; color: #666;">
          <strong>Note:</strong> Our design team will use these images to create your custom collage according to your selected style and preferences.
        </p>
      </div>
    </div>
    {{end}}

    {{if .HasRequests}}
    <div class="section">
      <h3>Your Special Requests</h3>
      <div class="requests">{{.Requests}}</div>
    </div>
    {{end}}

    <div class="section">
      <h3>What's Next?</h3>
      <p>Our team will review your order and contact you within 24-48 hours to confirm the details and arrange delivery.</p>
      <p>You can also reach us on WhatsApp for faster responses.</p>
    </div>

    <div class="footer">
      <p>&copy; {{.Year}} The Artistic Unity. All rights reserved.</p>
      <p>Colombo, Sri Lanka</p>
    </div>
  </div>
</body>
</html>` + userImagesPartial

var (
	ownerTmpl    = template.Must(template.New("owner").Parse(ownerEmailTemplate))
	customerTmpl = template.Must(template.New("customer").Parse(customerEmailTemplate))
)

// formatRequests escapes the free-text requests and turns newlines into
// <br> so multi-line notes survive the HTML body.
func formatRequests(requests string) template.HTML {
	if requests == "" {
		return "None"
	}
	escaped := template.HTMLEscapeString(requests)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

func newEmailData(order domain.Order, orderNumber string, now time.Time) emailData {
	sizeText := order.Size + " inches"
	if order.IsSpecialSize {
		sizeText = "Special Custom Size"
	}

	orderDate := order.Summary.OrderDate
	if orderDate.IsZero() {
		orderDate = now
	}

	images := make([]emailImage, 0, len(order.Images))
	for i, img := range order.Images {
		images = append(images, emailImage{
			Name:   img.Name,
			SizeMB: fmt.Sprintf("%.2f", float64(img.Size)/1024/1024),
			CID:    attachmentCID(i),
		})
	}

	return emailData{
		OrderNumber:        orderNumber,
		OrderDate:          orderDate.Format("1/2/2006, 3:04:05 PM"),
		CustomerName:       order.Customer.Name,
		CustomerEmail:      order.Customer.Email,
		CustomerPhone:      order.Customer.Phone,
		CustomerWhatsapp:   order.Customer.Whatsapp,
		CustomerAddress:    order.Customer.Address,
		FrameName:          order.Frame.Name,
		FrameCategory:      string(order.Frame.Category),
		FrameDescription:   order.Frame.Description,
		SizeText:           sizeText,
		Quantity:           order.Quantity,
		UnitPrice:          FormatLKR(order.UnitPrice),
		TotalPrice:         FormatLKR(order.TotalPrice),
		CollageSize:        order.Collage.Size,
		CollageOrientation: string(order.Collage.Orientation),
		CollageCategory:    order.Collage.Category,
		CollageSelected:    order.Collage.SelectedImage != domain.NotSelected,
		CollageImage:       order.Collage.SelectedImage,
		FrameType:          order.Customization.FrameType,
		FrameDesignChosen:  order.Customization.SelectedImage != domain.NotSelected,
		FrameDesignImage:   order.Customization.SelectedImage,
		Images:             images,
		Requests:           formatRequests(order.Customer.Requests),
		HasRequests:        order.Customer.Requests != "",
		OrderSource:        order.Metadata.OrderSource,
		BrowserInfo:        order.Metadata.BrowserInfo,
		OrderTimestamp:     order.Metadata.OrderTimestamp,
		Year:               now.Year(),
	}
}

func renderEmail(tmpl *template.Template, data emailData) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
