package relay

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io/ioutil"
	"net/url"
	"strings"
	"time"

	"arhat.dev/pkg/confhelper"
	"github.com/dgrijalva/jwt-go"
)

func NewConfig() interface{} {
	return &Config{}
}

// Config of the MQTT packet relay: packets dispatched by the attached
// tunnel are published to the outbound topic, packets arriving on the
// inbound topic are queued for the endpoint.
type Config struct {
	Broker    string `json:"broker" yaml:"broker"`
	Variant   string `json:"variant" yaml:"variant"`
	Version   string `json:"version" yaml:"version"`
	Transport string `json:"transport" yaml:"transport"`

	// InboundTopic the topic for data from mqtt broker -> tunnel queue
	InboundTopic string `json:"inboundTopic" yaml:"inboundTopic"`

	// OutboundTopic the topic for data from tunnel endpoint -> mqtt broker
	OutboundTopic string `json:"outboundTopic" yaml:"outboundTopic"`

	ClientID  string `json:"clientID" yaml:"clientID"`
	Username  string `json:"username" yaml:"username"`
	Password  string `json:"password" yaml:"password"`
	Keepalive int32  `json:"keepalive" yaml:"keepalive"`

	TLS confhelper.TLSConfig `json:"tls" yaml:"tls"`
}

type ConnectInfo struct {
	Username string
	Password string
	ClientID string

	InboundTopic       string
	OutboundTopic      string
	InboundTopicHandle string

	TLSConfig *tls.Config
}

// nolint:gocyclo
func (c Config) GetConnectInfo() (*ConnectInfo, error) {
	result := new(ConnectInfo)

	variant := strings.ToLower(c.Variant)
	switch variant {
	case "azure-iot-hub":
		deviceID := c.ClientID
		result.ClientID = deviceID

		propertyBag, err := url.ParseQuery(c.OutboundTopic)
		if err != nil {
			return nil, fmt.Errorf("failed to parse property bag: %w", err)
		}
		propertyBag["tunnet_id"] = []string{deviceID}
		propertyBag["tunnet"] = []string{""}

		// azure iot-hub topics
		result.OutboundTopic = fmt.Sprintf("devices/%s/messages/events/%s", deviceID, propertyBag.Encode())
		result.InboundTopic = fmt.Sprintf("devices/%s/messages/devicebound/#", deviceID)
		result.InboundTopicHandle = fmt.Sprintf("devices/%s/messages/devicebound/.*", deviceID)

		result.Username = fmt.Sprintf("%s/%s/?api-version=2018-06-30", c.Broker, deviceID)
		// Password is set to SAS token if not using mTLS
		result.Password = c.Password
	case "gcp-iot-core":
		if !c.TLS.Enabled || c.TLS.Key == "" {
			return nil, fmt.Errorf("no private key found")
		}

		if c.TLS.Cert != "" {
			return nil, fmt.Errorf("cert file must be empty")
		}

		result.ClientID = c.ClientID
		parts := strings.Split(c.ClientID, "/")
		if len(parts) != 8 {
			return nil, fmt.Errorf("expect 8 sections in client id but found %d", len(parts))
		}

		// second section is project id
		projectID := parts[1]
		claims := jwt.StandardClaims{
			Audience: projectID,
			IssuedAt: time.Now().Unix(),
			// valid for half a day (max value is 24 hr)
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		}

		keyBytes, err := ioutil.ReadFile(c.TLS.Key)
		if err != nil {
			return nil, fmt.Errorf("failed to read private key file: %w", err)
		}

		var (
			key        interface{}
			signMethod jwt.SigningMethod
		)

		block, _ := pem.Decode(keyBytes)
		switch block.Type {
		case "EC PRIVATE KEY":
			signMethod = jwt.SigningMethodES256
			key, err = x509.ParseECPrivateKey(block.Bytes)
		case "RSA PRIVATE KEY":
			signMethod = jwt.SigningMethodRS256
			key, err = x509.ParsePKCS1PrivateKey(block.Bytes)
		default:
			return nil, fmt.Errorf("unsupported private key algorithm")
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key: %w", err)
		}

		token := jwt.NewWithClaims(signMethod, claims)
		jwtToken, err := token.SignedString(key)
		if err != nil {
			return nil, fmt.Errorf("failed to sign jwt token: %w", err)
		}

		// last section is the device id
		deviceID := parts[7]
		result.OutboundTopic = fmt.Sprintf("/devices/%s/events", deviceID)
		if c.OutboundTopic != "" {
			result.OutboundTopic = fmt.Sprintf("/devices/%s/events/%s", deviceID, c.OutboundTopic)
		}
		result.InboundTopic = fmt.Sprintf("/devices/%s/commands/#", deviceID)
		result.InboundTopicHandle = fmt.Sprintf("/devices/%s/commands.*", deviceID)
		result.Password = jwtToken
	case "aws-iot-core":
		if !c.TLS.Enabled || c.TLS.Cert == "" || c.TLS.Key == "" {
			return nil, fmt.Errorf("tls cert key pair must be provided for aws-iot-core")
		}

		result.ClientID = c.ClientID
		result.InboundTopic, result.OutboundTopic = c.InboundTopic, c.OutboundTopic
		result.InboundTopicHandle = result.InboundTopic
	case "", "standard":
		result.Username = c.Username
		result.Password = c.Password
		result.ClientID = c.ClientID

		result.InboundTopic, result.OutboundTopic = c.InboundTopic, c.OutboundTopic
		result.InboundTopicHandle = result.InboundTopic
	default:
		return nil, fmt.Errorf("unsupported variant type")
	}

	var err error
	result.TLSConfig, err = c.TLS.GetTLSConfig(false)
	if err != nil {
		return nil, fmt.Errorf("failed to create client tls config: %w", err)
	}

	if variant == "aws-iot-core" {
		result.TLSConfig.NextProtos = []string{"x-amzn-mqtt-ca"}
	}

	return result, nil
}
